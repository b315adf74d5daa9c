package store

import (
	"sort"
	"time"
)

// Registration is a durable record that a user has committed to attend an
// event. Rows are append-only: never updated or deleted, and no uniqueness
// is enforced, so registering twice for the same event creates two rows.
type Registration struct {
	ID               uint64    `json:"id"`
	UserID           uint64    `json:"userId"`
	EventID          uint64    `json:"eventId"`
	RegistrationDate time.Time `json:"registrationDate"`
}

// RegistrationLine is a registration enriched with its event. Event is nil
// when the event has since been deleted.
type RegistrationLine struct {
	Registration
	Event *Event `json:"event"`
}

// Register appends a registration row for (userID, eventID) with the
// registration date set to now (UTC). The event must exist at creation
// time; its later deletion does not touch the row.
func (s *Store) Register(userID, eventID uint64) (Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[eventID]; !ok {
		return Registration{}, ErrEventNotFound
	}
	s.registrationSeq++
	reg := Registration{
		ID:               s.registrationSeq,
		UserID:           userID,
		EventID:          eventID,
		RegistrationDate: time.Now().UTC(),
	}
	s.registrations[reg.ID] = reg
	return reg, nil
}

// RegistrationsByUser returns the user's registrations enriched with their
// events, ordered by id.
func (s *Store) RegistrationsByUser(userID uint64) []RegistrationLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]RegistrationLine, 0)
	for _, reg := range s.registrations {
		if reg.UserID != userID {
			continue
		}
		line := RegistrationLine{Registration: reg}
		if ev, ok := s.events[reg.EventID]; ok {
			evCopy := ev
			line.Event = &evCopy
		}
		out = append(out, line)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
