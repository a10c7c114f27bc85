package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qoocca/parent-pay/internal/ports"
)

type recordedNotification struct {
	title     string
	body      string
	receiptID int64
}

type recordingNotifier struct {
	sent []recordedNotification
}

func (n *recordingNotifier) Notify(title, body string, receiptID int64) {
	n.sent = append(n.sent, recordedNotification{title: title, body: body, receiptID: receiptID})
}

func TestParseReceiptID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		raw    string
		wantID int64
		wantOK bool
	}{
		{name: "numeric", raw: "42", wantID: 42, wantOK: true},
		{name: "empty", raw: "", wantID: NoReceiptID, wantOK: false},
		{name: "non-numeric", raw: "abc", wantID: NoReceiptID, wantOK: false},
		{name: "zero", raw: "0", wantID: NoReceiptID, wantOK: false},
		{name: "negative", raw: "-7", wantID: NoReceiptID, wantOK: false},
		{name: "trailing junk", raw: "42x", wantID: NoReceiptID, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			id, ok := ParseReceiptID(tt.raw)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestReceiveDeliversAndSuppressesDuplicate(t *testing.T) {
	t.Parallel()

	notifier := &recordingNotifier{}
	receiver := NewReceiver(NewDeduplicator(newFakeClock()), notifier)
	msg := ports.PushMessage{Title: "Payment due", Body: "Please pay", ReceiptID: "42"}

	assert.True(t, receiver.Receive(msg))
	assert.False(t, receiver.Receive(msg))

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, recordedNotification{title: "Payment due", body: "Please pay", receiptID: 42}, notifier.sent[0])
}

func TestReceiveAppliesDefaultTitleAndBody(t *testing.T) {
	t.Parallel()

	notifier := &recordingNotifier{}
	receiver := NewReceiver(NewDeduplicator(newFakeClock()), notifier)

	assert.True(t, receiver.Receive(ports.PushMessage{ReceiptID: "7"}))

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, defaultTitle, notifier.sent[0].title)
	assert.Equal(t, defaultBody, notifier.sent[0].body)
}

func TestReceiveWithoutReceiptIDAlwaysDelivers(t *testing.T) {
	t.Parallel()

	notifier := &recordingNotifier{}
	receiver := NewReceiver(NewDeduplicator(newFakeClock()), notifier)
	msg := ports.PushMessage{Title: "Notice", Body: "Maintenance tonight"}

	assert.True(t, receiver.Receive(msg))
	assert.True(t, receiver.Receive(msg))

	require.Len(t, notifier.sent, 2)
	assert.Equal(t, NoReceiptID, notifier.sent[0].receiptID)
}

func TestReceiveDistinctReceiptsBothDeliver(t *testing.T) {
	t.Parallel()

	notifier := &recordingNotifier{}
	receiver := NewReceiver(NewDeduplicator(newFakeClock()), notifier)

	assert.True(t, receiver.Receive(ports.PushMessage{ReceiptID: "1"}))
	assert.True(t, receiver.Receive(ports.PushMessage{ReceiptID: "2"}))

	assert.Len(t, notifier.sent, 2)
}
