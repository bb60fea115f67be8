package client

import (
	"context"

	"github.com/anytype-sdk/anytype-go/model"
)

// Chat operations run over Transport.RPC rather than Transport.REST: the
// server's chat surface is defined as RPC methods (see
// chatstream.subscribeMethod for the subscription side of the same
// service), so point operations use the same channel instead of a
// parallel REST mapping that doesn't exist on the wire.
const (
	listChatsMethod     = "/anytype.Chats/ListChats"
	listMessagesMethod  = "/anytype.Chats/ListMessages"
	getMessagesMethod   = "/anytype.Chats/GetMessages"
	addMessageMethod    = "/anytype.Chats/AddMessage"
	editMessageMethod   = "/anytype.Chats/EditMessage"
	deleteMessageMethod = "/anytype.Chats/DeleteMessage"
	setReadStateMethod  = "/anytype.Chats/SetReadState"
	toggleReactionMethod = "/anytype.Chats/ToggleReaction"
)

// ReadType selects whether a read/unread operation targets every
// message or only those that mention the caller.
type ReadType string

const (
	ReadTypeMessages ReadType = "messages"
	ReadTypeMentions ReadType = "mentions"
)

// ChatState summarizes a chat room's unread counters, returned alongside
// a page of messages.
type ChatState struct {
	MessagesUnread int `json:"messages_unread"`
	MentionsUnread int `json:"mentions_unread"`
}

// ListMessagesResult is one page of chat messages plus the room's
// current unread state.
type ListMessagesResult struct {
	Messages []model.ChatMessage `json:"messages"`
	State    ChatState           `json:"state"`
}

// ListChats returns a list builder over the chat-room objects visible
// to the session.
func (c *Client) ListChats() *ListBuilder[model.Space] {
	return newRPCListBuilder[model.Space](c.Transport.RPC, listChatsMethod)
}

// listMessagesRequest is the RPC request body for listMessagesMethod.
type listMessagesRequest struct {
	ChatID     string `json:"chat_id"`
	After      string `json:"after,omitempty"`
	Limit      int    `json:"limit"`
	UnreadOnly string `json:"unread_only,omitempty"`
}

// ListMessagesBuilder accumulates parameters for a single list-messages
// round trip. Unlike the entity repositories, pagination here is driven
// by the caller re-issuing ListPage with a new After cursor, not by
// pagination.Result.
type ListMessagesBuilder struct {
	c          *Client
	chatID     string
	after      string
	limit      int
	unreadOnly *ReadType
}

// ListMessages starts a list-messages builder for chatID.
func (c *Client) ListMessages(chatID string) *ListMessagesBuilder {
	return &ListMessagesBuilder{c: c, chatID: chatID}
}

// After restricts results to messages with a strictly greater order id.
func (b *ListMessagesBuilder) After(orderID string) *ListMessagesBuilder {
	b.after = orderID
	return b
}

// Limit bounds the page size; unset defaults to 100.
func (b *ListMessagesBuilder) Limit(n int) *ListMessagesBuilder {
	b.limit = n
	return b
}

// UnreadOnly restricts results to unread messages of the given kind.
func (b *ListMessagesBuilder) UnreadOnly(rt ReadType) *ListMessagesBuilder {
	b.unreadOnly = &rt
	return b
}

// ListPage issues one round trip and returns the page plus unread state.
// Callers paginate further by calling ListMessages again with After set
// to the last returned message's OrderID.
func (b *ListMessagesBuilder) ListPage(ctx context.Context) (ListMessagesResult, error) {
	limit := b.limit
	if limit <= 0 {
		limit = defaultLimit
	}
	req := listMessagesRequest{ChatID: b.chatID, After: b.after, Limit: limit}
	if b.unreadOnly != nil {
		req.UnreadOnly = string(*b.unreadOnly)
	}

	var result ListMessagesResult
	if err := b.c.Transport.RPC.Invoke(ctx, listMessagesMethod, req, &result); err != nil {
		return ListMessagesResult{}, err
	}
	return result, nil
}

// getMessagesRequest is the RPC request body for getMessagesMethod.
type getMessagesRequest struct {
	ChatID string   `json:"chat_id"`
	IDs    []string `json:"ids"`
}

// GetMessages batch-fetches the messages identified by ids within
// chatID.
func (c *Client) GetMessages(ctx context.Context, chatID string, ids []string) ([]model.ChatMessage, error) {
	var messages []model.ChatMessage
	req := getMessagesRequest{ChatID: chatID, IDs: ids}
	if err := c.Transport.RPC.Invoke(ctx, getMessagesMethod, req, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// addMessageRequest is the RPC request body for addMessageMethod.
type addMessageRequest struct {
	ChatID      string               `json:"chat_id"`
	Content     model.MessageContent `json:"content"`
	Attachments []string             `json:"attachments,omitempty"`
	ReplyTo     string               `json:"reply_to,omitempty"`
}

// AddMessageBuilder accumulates fields for a new chat message.
type AddMessageBuilder struct {
	c           *Client
	chatID      string
	content     model.MessageContent
	attachments []string
	replyTo     string
}

// AddMessage starts a message-creation builder in chatID.
func (c *Client) AddMessage(chatID string) *AddMessageBuilder {
	return &AddMessageBuilder{c: c, chatID: chatID}
}

// Content sets the message body.
func (b *AddMessageBuilder) Content(content model.MessageContent) *AddMessageBuilder {
	b.content = content
	return b
}

// Attachments sets the file ids attached to the message.
func (b *AddMessageBuilder) Attachments(fileIDs []string) *AddMessageBuilder {
	b.attachments = fileIDs
	return b
}

// ReplyTo marks this message as a reply to an existing message id.
func (b *AddMessageBuilder) ReplyTo(id string) *AddMessageBuilder {
	b.replyTo = id
	return b
}

// Send issues the write and returns the new message id.
func (b *AddMessageBuilder) Send(ctx context.Context) (string, error) {
	req := addMessageRequest{ChatID: b.chatID, Content: b.content, Attachments: b.attachments, ReplyTo: b.replyTo}
	var out struct {
		ID string `json:"id"`
	}
	if err := b.c.Transport.RPC.Invoke(ctx, addMessageMethod, req, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

// editMessageRequest is the RPC request body for editMessageMethod.
type editMessageRequest struct {
	ChatID  string               `json:"chat_id"`
	ID      string               `json:"id"`
	Content model.MessageContent `json:"content"`
}

// EditMessageBuilder accumulates the new content for an existing
// message.
type EditMessageBuilder struct {
	c       *Client
	chatID  string
	id      string
	content model.MessageContent
}

// EditMessage starts an edit builder for message id within chatID.
func (c *Client) EditMessage(chatID, id string) *EditMessageBuilder {
	return &EditMessageBuilder{c: c, chatID: chatID, id: id}
}

// Content sets the replacement body.
func (b *EditMessageBuilder) Content(content model.MessageContent) *EditMessageBuilder {
	b.content = content
	return b
}

// Send issues the edit.
func (b *EditMessageBuilder) Send(ctx context.Context) error {
	req := editMessageRequest{ChatID: b.chatID, ID: b.id, Content: b.content}
	return b.c.Transport.RPC.Invoke(ctx, editMessageMethod, req, &struct{}{})
}

// deleteMessageRequest is the RPC request body for deleteMessageMethod.
type deleteMessageRequest struct {
	ChatID string `json:"chat_id"`
	ID     string `json:"id"`
}

// DeleteMessage deletes message id within chatID.
func (c *Client) DeleteMessage(ctx context.Context, chatID, id string) error {
	req := deleteMessageRequest{ChatID: chatID, ID: id}
	return c.Transport.RPC.Invoke(ctx, deleteMessageMethod, req, &struct{}{})
}

// setReadStateRequest is the RPC request body for setReadStateMethod.
type setReadStateRequest struct {
	ChatID   string   `json:"chat_id"`
	Action   string   `json:"action"`
	ReadType ReadType `json:"read_type"`
	After    string   `json:"after,omitempty"`
}

// ReadStateBuilder accumulates parameters for marking messages read or
// unread.
type ReadStateBuilder struct {
	c        *Client
	chatID   string
	readType ReadType
	after    string
}

// ReadMessages starts a mark-read builder for chatID.
func (c *Client) ReadMessages(chatID string) *ReadStateBuilder {
	return &ReadStateBuilder{c: c, chatID: chatID, readType: ReadTypeMessages}
}

// UnreadMessages starts a mark-unread builder for chatID.
func (c *Client) UnreadMessages(chatID string) *ReadStateBuilder {
	return &ReadStateBuilder{c: c, chatID: chatID, readType: ReadTypeMessages}
}

// ReadType narrows the operation to messages or mentions.
func (b *ReadStateBuilder) ReadType(rt ReadType) *ReadStateBuilder {
	b.readType = rt
	return b
}

// After restricts the operation to messages at or after orderID.
func (b *ReadStateBuilder) After(orderID string) *ReadStateBuilder {
	b.after = orderID
	return b
}

// MarkRead issues the mark-read write.
func (b *ReadStateBuilder) MarkRead(ctx context.Context) error {
	return b.mark(ctx, "read")
}

// MarkUnread issues the mark-unread write.
func (b *ReadStateBuilder) MarkUnread(ctx context.Context) error {
	return b.mark(ctx, "unread")
}

func (b *ReadStateBuilder) mark(ctx context.Context, action string) error {
	req := setReadStateRequest{ChatID: b.chatID, Action: action, ReadType: b.readType, After: b.after}
	return b.c.Transport.RPC.Invoke(ctx, setReadStateMethod, req, &struct{}{})
}

// toggleReactionRequest is the RPC request body for toggleReactionMethod.
type toggleReactionRequest struct {
	ChatID    string `json:"chat_id"`
	MessageID string `json:"message_id"`
	Emoji     string `json:"emoji"`
}

// ToggleReaction toggles emoji on message msgID within chatID for the
// current identity.
func (c *Client) ToggleReaction(ctx context.Context, chatID, msgID, emoji string) error {
	req := toggleReactionRequest{ChatID: chatID, MessageID: msgID, Emoji: emoji}
	return c.Transport.RPC.Invoke(ctx, toggleReactionMethod, req, &struct{}{})
}
