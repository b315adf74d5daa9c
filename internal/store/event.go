package store

import "sort"

// EventType is a read-only catalog category. The collection is seeded at
// startup and only ever created through seeding or tests; the public API
// exposes list and get operations.
type EventType struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// Event is a bookable listing. Price is an integer in the smallest currency
// unit. OrganizerID references the owning user; only that user may update
// or delete the event.
type Event struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Price       int64  `json:"price"`
	ImageURL    string `json:"imageUrl"`
	EventTypeID uint64 `json:"eventTypeId"`
	OrganizerID uint64 `json:"organizerId"`
}

// EventUpdate carries a partial event for UpdateEvent. Nil fields are left
// untouched; set fields overwrite the stored value. EventTypeID is
// updatable, OrganizerID is not: ownership never transfers.
type EventUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Location    *string `json:"location"`
	Price       *int64  `json:"price"`
	ImageURL    *string `json:"imageUrl"`
	EventTypeID *uint64 `json:"eventTypeId"`
}

// CreateEventType assigns the next id and stores the record.
func (s *Store) CreateEventType(t EventType) (EventType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eventTypeSeq++
	t.ID = s.eventTypeSeq
	s.eventTypes[t.ID] = t
	return t, nil
}

// GetEventType returns the event type with the given id or
// ErrEventTypeNotFound.
func (s *Store) GetEventType(id uint64) (EventType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.eventTypes[id]
	if !ok {
		return EventType{}, ErrEventTypeNotFound
	}
	return t, nil
}

// EventTypes returns all event types ordered by id.
func (s *Store) EventTypes() []EventType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]EventType, 0, len(s.eventTypes))
	for _, t := range s.eventTypes {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// CreateEvent assigns the next id and stores the record.
//
// Seed data bypasses the organizer check (there are no users yet at seed
// time); API-driven creation goes through CreateEventFor below.
func (s *Store) CreateEvent(ev Event) Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eventSeq++
	ev.ID = s.eventSeq
	s.events[ev.ID] = ev
	return ev
}

// CreateEventFor stores a new event owned by organizerID. The organizer id
// is taken from the authenticated session, never from the request body. It
// fails with ErrNotOrganizer unless the user exists and carries the
// organizer flag, and with ErrEventTypeNotFound for a dangling type id.
func (s *Store) CreateEventFor(organizerID uint64, ev Event) (Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[organizerID]
	if !ok || !u.IsOrganizer {
		return Event{}, ErrNotOrganizer
	}
	if _, ok := s.eventTypes[ev.EventTypeID]; !ok {
		return Event{}, ErrEventTypeNotFound
	}
	s.eventSeq++
	ev.ID = s.eventSeq
	ev.OrganizerID = organizerID
	s.events[ev.ID] = ev
	return ev, nil
}

// GetEvent returns the event with the given id or ErrEventNotFound.
func (s *Store) GetEvent(id uint64) (Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ev, ok := s.events[id]
	if !ok {
		return Event{}, ErrEventNotFound
	}
	return ev, nil
}

// Events returns all events ordered by id.
func (s *Store) Events() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Event, 0, len(s.events))
	for _, ev := range s.events {
		out = append(out, ev)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// EventsByType returns all events with the given event type id, ordered by id.
func (s *Store) EventsByType(eventTypeID uint64) []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Event, 0)
	for _, ev := range s.events {
		if ev.EventTypeID == eventTypeID {
			out = append(out, ev)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// EventsByOrganizer returns all events owned by the given user, ordered by id.
func (s *Store) EventsByOrganizer(organizerID uint64) []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Event, 0)
	for _, ev := range s.events {
		if ev.OrganizerID == organizerID {
			out = append(out, ev)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// UpdateEvent merges the set fields of upd into the event, but only when
// callerID owns it. ErrEventNotFound and ErrForbidden are distinct so the
// handler can answer 404 versus 403.
func (s *Store) UpdateEvent(id, callerID uint64, upd EventUpdate) (Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ev, ok := s.events[id]
	if !ok {
		return Event{}, ErrEventNotFound
	}
	if ev.OrganizerID != callerID {
		return Event{}, ErrForbidden
	}
	if upd.Title != nil {
		ev.Title = *upd.Title
	}
	if upd.Description != nil {
		ev.Description = *upd.Description
	}
	if upd.Date != nil {
		ev.Date = *upd.Date
	}
	if upd.Time != nil {
		ev.Time = *upd.Time
	}
	if upd.Location != nil {
		ev.Location = *upd.Location
	}
	if upd.Price != nil {
		ev.Price = *upd.Price
	}
	if upd.ImageURL != nil {
		ev.ImageURL = *upd.ImageURL
	}
	if upd.EventTypeID != nil {
		if _, ok := s.eventTypes[*upd.EventTypeID]; !ok {
			return Event{}, ErrEventTypeNotFound
		}
		ev.EventTypeID = *upd.EventTypeID
	}
	s.events[id] = ev
	return ev, nil
}

// DeleteEvent removes the event when callerID owns it. Deletion does not
// cascade: cart items and registrations referencing the event are left in
// place and will fail to enrich on later reads.
func (s *Store) DeleteEvent(id, callerID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ev, ok := s.events[id]
	if !ok {
		return ErrEventNotFound
	}
	if ev.OrganizerID != callerID {
		return ErrForbidden
	}
	delete(s.events, id)
	return nil
}
