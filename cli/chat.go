package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/anytype-sdk/anytype-go/client"
	"github.com/anytype-sdk/anytype-go/model"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "manage chat rooms and messages",
}

var chatListCmd = &cobra.Command{
	Use:   "list",
	Short: "list the chat rooms visible to the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		b, err := applyListFlags(cmd, c.ListChats())
		if err != nil {
			return err
		}
		page, err := b.List(cmd.Context())
		if err != nil {
			return err
		}
		if wantAll(cmd) {
			items, err := page.CollectAll(cmd.Context())
			if err != nil {
				return err
			}
			return render(cmd, items)
		}
		return render(cmd, page.Items)
	},
}

var (
	chatMessagesAfter   string
	chatMessagesLimit   int
	chatMessagesUnread  string
)

var chatMessagesCmd = &cobra.Command{
	Use:   "messages CHAT",
	Short: "page through a chat room's messages",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		b := c.ListMessages(args[0])
		if chatMessagesAfter != "" {
			b = b.After(chatMessagesAfter)
		}
		if chatMessagesLimit > 0 {
			b = b.Limit(chatMessagesLimit)
		}
		switch chatMessagesUnread {
		case "messages":
			b = b.UnreadOnly(client.ReadTypeMessages)
		case "mentions":
			b = b.UnreadOnly(client.ReadTypeMentions)
		}
		result, err := b.ListPage(cmd.Context())
		if err != nil {
			return err
		}
		return render(cmd, result)
	},
}

var chatGetCmd = &cobra.Command{
	Use:   "get CHAT MESSAGE_IDS",
	Short: "batch-fetch messages by comma-separated ids",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		ids := strings.Split(args[1], ",")
		messages, err := c.GetMessages(cmd.Context(), args[0], ids)
		if err != nil {
			return err
		}
		return render(cmd, messages)
	},
}

var (
	chatSendText        string
	chatSendAttachments []string
	chatSendReplyTo     string
)

var chatSendCmd = &cobra.Command{
	Use:   "send CHAT",
	Short: "send a new message to a chat room",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		b := c.AddMessage(args[0]).Content(model.MessageContent{Text: chatSendText})
		if len(chatSendAttachments) > 0 {
			b = b.Attachments(chatSendAttachments)
		}
		if chatSendReplyTo != "" {
			b = b.ReplyTo(chatSendReplyTo)
		}
		id, err := b.Send(cmd.Context())
		if err != nil {
			return err
		}
		return render(cmd, map[string]any{"id": id})
	},
}

var chatEditText string

var chatEditCmd = &cobra.Command{
	Use:   "edit CHAT MESSAGE",
	Short: "replace a message's content",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		err = c.EditMessage(args[0], args[1]).Content(model.MessageContent{Text: chatEditText}).Send(cmd.Context())
		if err != nil {
			return err
		}
		return render(cmd, map[string]any{"status": "edited"})
	},
}

var chatDeleteCmd = &cobra.Command{
	Use:   "delete CHAT MESSAGE",
	Short: "delete a message",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		if err := c.DeleteMessage(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		return render(cmd, map[string]any{"status": "deleted"})
	},
}

var (
	chatReadType  string
	chatReadAfter string
)

func readTypeFromFlag() client.ReadType {
	if chatReadType == "mentions" {
		return client.ReadTypeMentions
	}
	return client.ReadTypeMessages
}

var chatMarkReadCmd = &cobra.Command{
	Use:   "mark-read CHAT",
	Short: "mark messages (or mentions) read",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		b := c.ReadMessages(args[0]).ReadType(readTypeFromFlag())
		if chatReadAfter != "" {
			b = b.After(chatReadAfter)
		}
		if err := b.MarkRead(cmd.Context()); err != nil {
			return err
		}
		return render(cmd, map[string]any{"status": "read"})
	},
}

var chatMarkUnreadCmd = &cobra.Command{
	Use:   "mark-unread CHAT",
	Short: "mark messages (or mentions) unread",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		b := c.UnreadMessages(args[0]).ReadType(readTypeFromFlag())
		if chatReadAfter != "" {
			b = b.After(chatReadAfter)
		}
		if err := b.MarkUnread(cmd.Context()); err != nil {
			return err
		}
		return render(cmd, map[string]any{"status": "unread"})
	},
}

var chatReactCmd = &cobra.Command{
	Use:   "react CHAT MESSAGE EMOJI",
	Short: "toggle an emoji reaction on a message",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		if err := c.ToggleReaction(cmd.Context(), args[0], args[1], args[2]); err != nil {
			return err
		}
		return render(cmd, map[string]any{"status": "toggled"})
	},
}

func init() {
	addListFlags(chatListCmd)
	addOutputFlag(chatListCmd)

	chatMessagesCmd.Flags().StringVar(&chatMessagesAfter, "after", "", "order id cursor")
	chatMessagesCmd.Flags().IntVar(&chatMessagesLimit, "limit", 0, "page size (default 100)")
	chatMessagesCmd.Flags().StringVar(&chatMessagesUnread, "unread", "", "messages|mentions")
	addOutputFlag(chatMessagesCmd)
	addOutputFlag(chatGetCmd)

	chatSendCmd.Flags().StringVar(&chatSendText, "text", "", "message text")
	chatSendCmd.Flags().StringArrayVar(&chatSendAttachments, "attachment", nil, "attached file id, repeatable")
	chatSendCmd.Flags().StringVar(&chatSendReplyTo, "reply-to", "", "message id being replied to")
	addOutputFlag(chatSendCmd)

	chatEditCmd.Flags().StringVar(&chatEditText, "text", "", "replacement text")
	addOutputFlag(chatEditCmd)
	addOutputFlag(chatDeleteCmd)

	chatMarkReadCmd.Flags().StringVar(&chatReadType, "type", "messages", "messages|mentions")
	chatMarkReadCmd.Flags().StringVar(&chatReadAfter, "after", "", "order id cursor")
	addOutputFlag(chatMarkReadCmd)
	chatMarkUnreadCmd.Flags().StringVar(&chatReadType, "type", "messages", "messages|mentions")
	chatMarkUnreadCmd.Flags().StringVar(&chatReadAfter, "after", "", "order id cursor")
	addOutputFlag(chatMarkUnreadCmd)
	addOutputFlag(chatReactCmd)

	chatCmd.AddCommand(chatListCmd, chatMessagesCmd, chatGetCmd, chatSendCmd, chatEditCmd, chatDeleteCmd,
		chatMarkReadCmd, chatMarkUnreadCmd, chatReactCmd)
}
