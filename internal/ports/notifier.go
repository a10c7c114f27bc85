package ports

// PushMessage is an inbound push payload. ReceiptID is the raw string from
// the message data; the notify layer parses it.
type PushMessage struct {
	Title     string
	Body      string
	ReceiptID string
}

// Notifier presents a notification to the user.
type Notifier interface {
	Notify(title, body string, receiptID int64)
}
