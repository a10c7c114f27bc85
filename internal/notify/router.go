package notify

import "strconv"

// NoReceiptID marks a push message whose receipt reference could not be
// parsed; such messages bypass deduplication entirely.
const NoReceiptID int64 = -1

// ParseReceiptID extracts a usable dedup key from the raw push payload
// value. Non-numeric or non-positive values yield no key.
func ParseReceiptID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return NoReceiptID, false
	}

	return id, true
}
