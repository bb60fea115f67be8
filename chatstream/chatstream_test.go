package chatstream

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anytype-sdk/anytype-go/model"
)

func TestRingBuffer_FIFOOrder(t *testing.T) {
	r := newRingBuffer(4)
	r.push(Event{Kind: MessageAdded, MessageID: "1"})
	r.push(Event{Kind: MessageAdded, MessageID: "2"})

	ev, ok := r.pop()
	require.True(t, ok)
	assert.Equal(t, "1", ev.MessageID)

	ev, ok = r.pop()
	require.True(t, ok)
	assert.Equal(t, "2", ev.MessageID)
}

func TestRingBuffer_OldestDropOnOverflow(t *testing.T) {
	r := newRingBuffer(2)
	r.push(Event{Kind: MessageAdded, MessageID: "1"})
	r.push(Event{Kind: MessageAdded, MessageID: "2"})
	r.push(Event{Kind: MessageAdded, MessageID: "3"}) // drops "1"

	assert.Equal(t, int64(1), r.droppedCount())

	ev, ok := r.pop()
	require.True(t, ok)
	assert.Equal(t, "2", ev.MessageID, "oldest undropped event pops first")

	ev, ok = r.pop()
	require.True(t, ok)
	assert.Equal(t, "3", ev.MessageID)
}

func TestRingBuffer_PushAfterCloseIsDiscardedSilently(t *testing.T) {
	r := newRingBuffer(4)
	r.close()
	r.push(Event{Kind: MessageAdded, MessageID: "1"})

	_, ok := r.pop()
	assert.False(t, ok, "a closed, empty buffer reports no more events")
}

func TestRingBuffer_DrainsRemainingEventsBeforeClosing(t *testing.T) {
	r := newRingBuffer(4)
	r.push(Event{Kind: MessageAdded, MessageID: "1"})
	r.close()

	ev, ok := r.pop()
	require.True(t, ok, "buffered events survive a close call")
	assert.Equal(t, "1", ev.MessageID)

	_, ok = r.pop()
	assert.False(t, ok)
}

func TestForward_DeliversThenClosesOutputChannel(t *testing.T) {
	buf := newRingBuffer(4)
	buf.push(Event{Kind: MessageAdded, MessageID: "1"})
	buf.push(Event{Kind: MessageAdded, MessageID: "2"})
	buf.close()

	out := make(chan Event)
	go forward(buf, out)

	var got []string
	for ev := range out {
		got = append(got, ev.MessageID)
	}
	assert.Equal(t, []string{"1", "2"}, got)
}

func TestTranslateFrame(t *testing.T) {
	cases := []struct {
		name string
		in   wireFrame
		kind Kind
		ok   bool
	}{
		{"message added", wireFrame{Type: "message_added", ChatID: "c1", Message: &model.ChatMessage{ID: "m1"}}, MessageAdded, true},
		{"message updated", wireFrame{Type: "message_updated", ChatID: "c1", Message: &model.ChatMessage{ID: "m1"}}, MessageUpdated, true},
		{"message deleted", wireFrame{Type: "message_deleted", ChatID: "c1", MessageID: "m1"}, MessageDeleted, true},
		{"reaction changed", wireFrame{Type: "reaction_changed", ChatID: "c1", Emoji: "👍"}, ReactionChanged, true},
		{"read state changed", wireFrame{Type: "read_state_changed", ChatID: "c1"}, ReadStateChanged, true},
		{"unknown frame type is ignored", wireFrame{Type: "something_new"}, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ev, ok := translateFrame(tc.in)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.kind, ev.Kind)
				assert.Equal(t, tc.in.ChatID, ev.ChatID)
			}
		})
	}
}

func TestDefaultBackoffPolicy(t *testing.T) {
	p := DefaultBackoffPolicy()
	assert.Equal(t, 2.0, p.Factor)
	assert.Less(t, p.Initial, p.Max)
}

func TestBuilder_RequiresAtLeastOneSubscription(t *testing.T) {
	b := New(nil)
	_, err := b.Build(nil)
	require.Error(t, err)
}

func TestNewExponentialBackOff_RespectsPolicyBounds(t *testing.T) {
	policy := BackoffPolicy{Initial: 10 * time.Millisecond, Max: 100 * time.Millisecond, Factor: 2.0}
	bo := newExponentialBackOff(policy)

	for i := 0; i < 10; i++ {
		d := bo.NextBackOff()
		assert.GreaterOrEqual(t, d, time.Duration(0))
		assert.LessOrEqual(t, d, policy.Max+policy.Max/2, "randomization factor may push slightly past Max")
	}
}
