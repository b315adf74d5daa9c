package store

import "sort"

// CartItem is a pending, not-yet-registered intent to attend an event. At
// most one row exists per (userId, eventId) pair; adding the same event
// again increments Quantity instead of inserting a duplicate.
type CartItem struct {
	ID       uint64 `json:"id"`
	UserID   uint64 `json:"userId"`
	EventID  uint64 `json:"eventId"`
	Quantity int64  `json:"quantity"`
}

// CartLine is a cart item enriched with its event for API responses and
// for totals. Event is nil when the referenced event has since been
// deleted (no cascade on event deletion).
type CartLine struct {
	CartItem
	Event *Event `json:"event"`
}

// CartSummary is the aggregate view of one user's cart. All amounts are in
// the smallest currency unit. These values are pure functions of the cart
// snapshot, recomputed on every read; nothing is cached.
type CartSummary struct {
	Items      []CartLine `json:"items"`
	Subtotal   int64      `json:"subtotal"`
	ServiceFee int64      `json:"serviceFee"`
	Total      int64      `json:"total"`
	ItemCount  int64      `json:"itemCount"`
}

// ServiceFee returns the 5% surcharge on a subtotal, rounded half-up in
// integer arithmetic. A subtotal of 1010 carries a fee of exactly 50.5 and
// rounds to 51.
func ServiceFee(subtotal int64) int64 {
	return (subtotal*5 + 50) / 100
}

// AddToCart merges quantity into an existing (userID, eventID) row or
// creates a new one. The whole check-then-act sequence runs under the write
// lock, so concurrent adds for the same pair cannot produce duplicate rows.
// The event must exist; dangling cart references are rejected up front.
func (s *Store) AddToCart(userID, eventID uint64, quantity int64) (CartItem, error) {
	if quantity < 1 {
		quantity = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[eventID]; !ok {
		return CartItem{}, ErrEventNotFound
	}
	for id, item := range s.cartItems {
		if item.UserID == userID && item.EventID == eventID {
			item.Quantity += quantity
			s.cartItems[id] = item
			return item, nil
		}
	}
	s.cartItemSeq++
	item := CartItem{ID: s.cartItemSeq, UserID: userID, EventID: eventID, Quantity: quantity}
	s.cartItems[item.ID] = item
	return item, nil
}

// GetCartItem returns the cart item with the given id or ErrCartItemNotFound.
func (s *Store) GetCartItem(id uint64) (CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.cartItems[id]
	if !ok {
		return CartItem{}, ErrCartItemNotFound
	}
	return item, nil
}

// CartItemsByUser returns the user's cart items ordered by id.
func (s *Store) CartItemsByUser(userID uint64) []CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]CartItem, 0)
	for _, item := range s.cartItems {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// RemoveFromCart deletes the cart item, but only when callerID owns it.
// The caller cannot distinguish "absent" from "someone else's": both come
// back as ErrCartItemNotFound so ids cannot be probed across users.
func (s *Store) RemoveFromCart(id, callerID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.cartItems[id]
	if !ok || item.UserID != callerID {
		return ErrCartItemNotFound
	}
	delete(s.cartItems, id)
	return nil
}

// ClearCart removes every cart item belonging to userID and reports how
// many were removed. Other users' items are untouched.
func (s *Store) ClearCart(userID uint64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, item := range s.cartItems {
		if item.UserID == userID {
			delete(s.cartItems, id)
			n++
		}
	}
	return n
}

// Summarize computes subtotal, service fee, total and item count for the
// user's current cart in one read-locked pass, with each line enriched by
// its event. Lines whose event has been deleted contribute nothing to the
// totals but still appear with a nil event, so clients can surface them.
func (s *Store) Summarize(userID uint64) CartSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sum := CartSummary{Items: make([]CartLine, 0)}
	for _, item := range s.cartItems {
		if item.UserID != userID {
			continue
		}
		line := CartLine{CartItem: item}
		if ev, ok := s.events[item.EventID]; ok {
			evCopy := ev
			line.Event = &evCopy
			sum.Subtotal += ev.Price * item.Quantity
		}
		sum.ItemCount += item.Quantity
		sum.Items = append(sum.Items, line)
	}
	sort.Slice(sum.Items, func(i, j int) bool { return sum.Items[i].ID < sum.Items[j].ID })
	sum.ServiceFee = ServiceFee(sum.Subtotal)
	sum.Total = sum.Subtotal + sum.ServiceFee
	return sum
}
