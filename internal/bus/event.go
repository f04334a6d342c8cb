package bus

import "time"

// Event is one published occurrence. Kind names the wire event it was
// decoded from; Payload holds the decoded value.
type Event struct {
	Kind    string
	At      time.Time
	Payload any
}
