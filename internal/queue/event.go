// Package queue defines message payloads exchanged over the message broker
// and the background consumer that records them.
package queue

// RegistrationConfirmedEvent is published when a registration row is
// created, either directly or through cart checkout. It carries enough for
// downstream consumers to log or notify without querying the store.
type RegistrationConfirmedEvent struct {
	RegistrationID uint64 `json:"registration_id"`
	UserID         uint64 `json:"user_id"`
	EventID        uint64 `json:"event_id"`
	EventTitle     string `json:"event_title"`
	Price          int64  `json:"price"`
	Source         string `json:"source"` // "direct" or "checkout"
	RegisteredAt   string `json:"registered_at"`
}
