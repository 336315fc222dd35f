package domain

import "time"

// SystemUsername is the sender name of server-originated messages.
// System messages are never encrypted.
const SystemUsername = "System"

// TimestampLayout matches the human-readable format clients render directly.
const TimestampLayout = "2006-01-02 03:04:05 PM"

// Timestamp formats t in the wire timestamp layout.
func Timestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
