// Package chatstream implements the chat subscription engine (C10): a
// single bidirectional RPC stream multiplexing per-chat subscriptions
// plus an optional chat-previews subscription, decoded into a bounded,
// oldest-drop event sequence with reconnect/backoff.
package chatstream

import (
	"context"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"google.golang.org/grpc"

	"github.com/anytype-sdk/anytype-go/client"
	"github.com/anytype-sdk/anytype-go/errs"
	"github.com/anytype-sdk/anytype-go/internal/logging"
	"github.com/anytype-sdk/anytype-go/model"
	"github.com/anytype-sdk/anytype-go/transport"
)

const subscribeMethod = "/anytype.Chats/Subscribe"

// Kind classifies an Event.
type Kind int

const (
	MessageAdded Kind = iota
	MessageUpdated
	MessageDeleted
	ReactionChanged
	ReadStateChanged
	StreamDisconnected
	StreamResubscribed
)

// Event is the single variant type delivered on a Handle's event
// sequence. Only the fields relevant to Kind are populated.
type Event struct {
	Kind Kind

	ChatID    string
	Message   *model.ChatMessage // MessageAdded, MessageUpdated
	MessageID string              // MessageDeleted

	Emoji      string   // ReactionChanged
	Identities []string // ReactionChanged

	ReadState *client.ChatState // ReadStateChanged
}

// BackoffPolicy controls the reconnect delay curve: exponential with
// jitter, via cenkalti/backoff/v4.ExponentialBackOff.
type BackoffPolicy struct {
	Initial time.Duration
	Max     time.Duration
	Factor  float64
}

// DefaultBackoffPolicy returns the library's defaults: 250ms initial,
// 5s max, factor 2.0.
func DefaultBackoffPolicy() BackoffPolicy {
	return BackoffPolicy{Initial: 250 * time.Millisecond, Max: 5 * time.Second, Factor: 2.0}
}

// newExponentialBackOff builds a cenkalti/backoff ExponentialBackOff
// from policy, with MaxElapsedTime disabled since the engine's lifetime
// is governed by the caller's context, not a backoff deadline.
func newExponentialBackOff(policy BackoffPolicy) *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = policy.Initial
	b.MaxInterval = policy.Max
	b.Multiplier = policy.Factor
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}

const defaultBufferSize = 256

type subscription struct {
	subID    string
	chatID   string
	previews bool
}

// Builder accumulates the subscriptions, buffer size, and backoff policy
// for a chat stream before it is built.
type Builder struct {
	rc      *transport.RPCChannel
	subs    []subscription
	bufSize int
	backoff BackoffPolicy
}

// New starts a chat stream builder over rc.
func New(rc *transport.RPCChannel) *Builder {
	return &Builder{rc: rc, bufSize: defaultBufferSize, backoff: DefaultBackoffPolicy()}
}

// SubscribeChat adds a per-chat subscription for chatID.
func (b *Builder) SubscribeChat(chatID string) *Builder {
	b.subs = append(b.subs, subscription{subID: uuid.NewString(), chatID: chatID})
	return b
}

// SubscribePreviews adds the unread-summary-across-all-chats
// subscription.
func (b *Builder) SubscribePreviews() *Builder {
	b.subs = append(b.subs, subscription{subID: uuid.NewString(), previews: true})
	return b
}

// Buffer overrides the event buffer size (default 256).
func (b *Builder) Buffer(n int) *Builder {
	b.bufSize = n
	return b
}

// Backoff overrides the reconnect backoff policy.
func (b *Builder) Backoff(p BackoffPolicy) *Builder {
	b.backoff = p
	return b
}

// Build starts the engine and returns a handle to its event sequence.
// ctx governs the stream's lifetime: canceling it (or calling
// Handle.Shutdown) transitions the engine to Closed.
func (b *Builder) Build(ctx context.Context) (*Handle, error) {
	if len(b.subs) == 0 {
		return nil, errs.Validation("chat stream needs at least one subscription")
	}

	runCtx, cancel := context.WithCancel(ctx)
	buf := newRingBuffer(b.bufSize)
	out := make(chan Event)
	done := make(chan struct{})

	h := &Handle{Events: out, cancel: cancel, done: done, buf: buf}

	go forward(buf, out)
	go h.run(runCtx, b.rc, b.subs, b.backoff, done)

	return h, nil
}

// Handle is the caller-facing view of a running chat stream: an event
// sequence to consume and a shutdown control.
type Handle struct {
	Events <-chan Event

	cancel context.CancelFunc
	done   chan struct{}
	buf    *ringBuffer
}

// Dropped returns the number of events dropped so far because the
// buffer was full when they arrived.
func (h *Handle) Dropped() int64 {
	return h.buf.droppedCount()
}

// Shutdown transitions the engine to Closed, cancels the in-flight RPC,
// and blocks until the engine loop has stopped. Events already buffered
// at that point are still delivered on Events, which closes after the
// last of them; Shutdown does not wait for that delivery.
func (h *Handle) Shutdown() {
	h.cancel()
	<-h.done
}

// forward drains buf and delivers events on out, one at a time, until
// buf is closed and empty, then closes out.
func forward(buf *ringBuffer, out chan<- Event) {
	defer close(out)
	for {
		ev, ok := buf.pop()
		if !ok {
			return
		}
		out <- ev
	}
}

type engineState int

const (
	stateConnecting engineState = iota
	stateSubscribing
	stateLive
	stateDisconnected
	stateBackingOff
	stateClosed
)

// run drives the connect/subscribe/backoff state machine until ctx is
// canceled or a fatal (auth) error occurs, then closes buf and signals
// done.
func (h *Handle) run(ctx context.Context, rc *transport.RPCChannel, subs []subscription, policy BackoffPolicy, done chan struct{}) {
	defer close(done)
	defer h.buf.close()

	state := stateConnecting
	bo := newExponentialBackOff(policy)
	firstConnect := true

	var stream grpc.ClientStream
	var liveSince time.Time

	for state != stateClosed {
		switch state {
		case stateConnecting:
			s, err := rc.NewBiStream(ctx, subscribeMethod)
			if err != nil {
				if ctx.Err() != nil {
					state = stateClosed
					break
				}
				state = stateBackingOff
				break
			}
			stream = s
			state = stateSubscribing

		case stateSubscribing:
			failed := false
			for _, sub := range subs {
				frame := wireFrame{Op: "subscribe", SubID: sub.subID, ChatID: sub.chatID, Previews: sub.previews}
				if err := stream.SendMsg(frame); err != nil {
					failed = true
					break
				}
			}
			if failed {
				if ctx.Err() != nil {
					state = stateClosed
					break
				}
				state = stateDisconnected
				break
			}
			if !firstConnect {
				h.buf.push(Event{Kind: StreamResubscribed})
			}
			firstConnect = false
			liveSince = time.Now()
			state = stateLive

		case stateLive:
			var frame wireFrame
			if err := stream.RecvMsg(&frame); err != nil {
				if ctx.Err() != nil {
					state = stateClosed
					break
				}
				state = stateDisconnected
				break
			}
			if ev, ok := translateFrame(frame); ok {
				h.buf.push(ev)
			}
			if time.Since(liveSince) >= time.Second {
				bo.Reset()
			}

		case stateDisconnected:
			h.buf.push(Event{Kind: StreamDisconnected})
			state = stateBackingOff

		case stateBackingOff:
			timer := time.NewTimer(bo.NextBackOff())
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				state = stateClosed
				continue
			}
			state = stateConnecting
		}
	}

	logging.Log.Debug("chatstream: engine closed")
}

// wireFrame is the JSON-over-HTTP/2 frame shape for both directions of
// the subscribe stream: outbound subscribe requests and inbound events.
type wireFrame struct {
	// outbound
	Op       string `json:"op,omitempty"`
	SubID    string `json:"sub_id,omitempty"`
	ChatID   string `json:"chat_id,omitempty"`
	Previews bool   `json:"previews,omitempty"`

	// inbound
	Type       string             `json:"type,omitempty"`
	Message    *model.ChatMessage `json:"message,omitempty"`
	MessageID  string             `json:"message_id,omitempty"`
	Emoji      string             `json:"emoji,omitempty"`
	Identities []string           `json:"identities,omitempty"`
	State      *client.ChatState  `json:"state,omitempty"`
}

func translateFrame(f wireFrame) (Event, bool) {
	switch f.Type {
	case "message_added":
		return Event{Kind: MessageAdded, ChatID: f.ChatID, Message: f.Message}, true
	case "message_updated":
		return Event{Kind: MessageUpdated, ChatID: f.ChatID, Message: f.Message}, true
	case "message_deleted":
		return Event{Kind: MessageDeleted, ChatID: f.ChatID, MessageID: f.MessageID}, true
	case "reaction_changed":
		return Event{Kind: ReactionChanged, ChatID: f.ChatID, MessageID: f.MessageID, Emoji: f.Emoji, Identities: f.Identities}, true
	case "read_state_changed":
		return Event{Kind: ReadStateChanged, ChatID: f.ChatID, ReadState: f.State}, true
	default:
		return Event{}, false
	}
}

// ringBuffer is a bounded FIFO of Events with oldest-drop backpressure:
// pushing onto a full buffer discards the oldest entry and increments a
// drop counter rather than blocking the stream reader.
type ringBuffer struct {
	mu      sync.Mutex
	cond    *sync.Cond
	buf     []Event
	cap     int
	closed  bool
	dropped int64
}

func newRingBuffer(capacity int) *ringBuffer {
	if capacity <= 0 {
		capacity = defaultBufferSize
	}
	r := &ringBuffer{cap: capacity}
	r.cond = sync.NewCond(&r.mu)
	return r
}

func (r *ringBuffer) push(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	if len(r.buf) >= r.cap {
		r.buf = r.buf[1:]
		r.dropped++
	}
	r.buf = append(r.buf, e)
	r.cond.Signal()
}

// pop blocks until an event is available or the buffer is closed and
// drained, in which case it returns (Event{}, false).
func (r *ringBuffer) pop() (Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for len(r.buf) == 0 && !r.closed {
		r.cond.Wait()
	}
	if len(r.buf) == 0 {
		return Event{}, false
	}
	e := r.buf[0]
	r.buf = r.buf[1:]
	return e, true
}

func (r *ringBuffer) close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	r.cond.Broadcast()
}

func (r *ringBuffer) droppedCount() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dropped
}
