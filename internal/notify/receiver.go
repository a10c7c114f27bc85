package notify

import (
	"github.com/rs/zerolog/log"

	"github.com/qoocca/parent-pay/internal/ports"
)

const (
	defaultTitle = "Payment request"
	defaultBody  = "A new payment request has arrived."
)

// Receiver consumes inbound push messages, suppresses duplicates, and
// forwards the rest to the notifier.
type Receiver struct {
	dedup    *Deduplicator
	notifier ports.Notifier
}

func NewReceiver(dedup *Deduplicator, notifier ports.Notifier) *Receiver {
	return &Receiver{dedup: dedup, notifier: notifier}
}

// Receive handles one push message and reports whether it was delivered.
// Messages without a parseable receipt ID always deliver.
func (r *Receiver) Receive(msg ports.PushMessage) bool {
	receiptID, hasKey := ParseReceiptID(msg.ReceiptID)
	if hasKey && r.dedup.ShouldSuppress(receiptID) {
		log.Debug().Int64("receiptId", receiptID).Msg("duplicate notification suppressed")
		return false
	}

	title := msg.Title
	if title == "" {
		title = defaultTitle
	}
	body := msg.Body
	if body == "" {
		body = defaultBody
	}

	r.notifier.Notify(title, body, receiptID)
	return true
}
