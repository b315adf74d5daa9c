package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore builds an unseeded store with one organizer and two events
// priced like the seed catalog's first two entries.
func newTestStore(t *testing.T) (*Store, User, Event, Event) {
	t.Helper()
	s := New(false)
	org, err := s.CreateUser(User{Username: "organizer", Password: "x", FullName: "Org", IsOrganizer: true})
	require.NoError(t, err)
	typ, err := s.CreateEventType(EventType{Name: "Wedding"})
	require.NoError(t, err)
	ev1, err := s.CreateEventFor(org.ID, Event{Title: "Wedding A", Description: "d", Price: 5000, EventTypeID: typ.ID})
	require.NoError(t, err)
	ev2, err := s.CreateEventFor(org.ID, Event{Title: "Bratabandha B", Description: "d", Price: 3500, EventTypeID: typ.ID})
	require.NoError(t, err)
	return s, org, ev1, ev2
}

func TestAddToCart_MergesSamePair(t *testing.T) {
	s, u, ev, _ := newTestStore(t)

	first, err := s.AddToCart(u.ID, ev.ID, 1)
	require.NoError(t, err)
	second, err := s.AddToCart(u.ID, ev.ID, 2)
	require.NoError(t, err)
	third, err := s.AddToCart(u.ID, ev.ID, 3)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.ID, third.ID)
	assert.Equal(t, int64(6), third.Quantity)

	items := s.CartItemsByUser(u.ID)
	require.Len(t, items, 1)
	assert.Equal(t, int64(6), items[0].Quantity)
}

func TestAddToCart_SeparateRowsPerEvent(t *testing.T) {
	s, u, ev1, ev2 := newTestStore(t)

	_, err := s.AddToCart(u.ID, ev1.ID, 1)
	require.NoError(t, err)
	_, err = s.AddToCart(u.ID, ev2.ID, 1)
	require.NoError(t, err)

	assert.Len(t, s.CartItemsByUser(u.ID), 2)
}

func TestAddToCart_UnknownEvent(t *testing.T) {
	s, u, _, _ := newTestStore(t)

	_, err := s.AddToCart(u.ID, 999, 1)
	assert.ErrorIs(t, err, ErrEventNotFound)
	assert.Empty(t, s.CartItemsByUser(u.ID))
}

func TestAddToCart_QuantityFloor(t *testing.T) {
	s, u, ev, _ := newTestStore(t)

	item, err := s.AddToCart(u.ID, ev.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), item.Quantity)
}

func TestServiceFee_RoundsHalfUp(t *testing.T) {
	cases := []struct {
		subtotal int64
		fee      int64
	}{
		{0, 0},
		{12000, 600},  // exact 5%
		{1010, 51},    // 50.5 rounds up
		{1009, 50},    // 50.45 rounds down
		{100, 5},
		{1, 0},        // 0.05 rounds down
		{10, 1},       // 0.5 rounds up
	}
	for _, tc := range cases {
		assert.Equal(t, tc.fee, ServiceFee(tc.subtotal), "subtotal=%d", tc.subtotal)
	}
}

func TestSummarize(t *testing.T) {
	s, u, ev1, ev2 := newTestStore(t)

	// ev1 price 5000 qty 1, ev2 price 3500 qty 2.
	_, err := s.AddToCart(u.ID, ev1.ID, 1)
	require.NoError(t, err)
	_, err = s.AddToCart(u.ID, ev2.ID, 2)
	require.NoError(t, err)

	sum := s.Summarize(u.ID)
	assert.Equal(t, int64(12000), sum.Subtotal)
	assert.Equal(t, int64(600), sum.ServiceFee)
	assert.Equal(t, int64(12600), sum.Total)
	assert.Equal(t, int64(3), sum.ItemCount)
	require.Len(t, sum.Items, 2)
	require.NotNil(t, sum.Items[0].Event)
	assert.Equal(t, ev1.ID, sum.Items[0].Event.ID)
}

func TestSummarize_EmptyCart(t *testing.T) {
	s, u, _, _ := newTestStore(t)

	sum := s.Summarize(u.ID)
	assert.Zero(t, sum.Subtotal)
	assert.Zero(t, sum.ServiceFee)
	assert.Zero(t, sum.Total)
	assert.Zero(t, sum.ItemCount)
	assert.Empty(t, sum.Items)
}

func TestSummarize_DeletedEventLine(t *testing.T) {
	s, org, ev1, ev2 := newTestStore(t)

	_, err := s.AddToCart(org.ID, ev1.ID, 1)
	require.NoError(t, err)
	_, err = s.AddToCart(org.ID, ev2.ID, 1)
	require.NoError(t, err)

	// No cascade: the line survives the event deletion but stops counting
	// toward the totals.
	require.NoError(t, s.DeleteEvent(ev2.ID, org.ID))

	sum := s.Summarize(org.ID)
	require.Len(t, sum.Items, 2)
	assert.Nil(t, sum.Items[1].Event)
	assert.Equal(t, ev1.Price, sum.Subtotal)
	assert.Equal(t, int64(2), sum.ItemCount)
}

func TestRemoveFromCart(t *testing.T) {
	s, u, ev1, ev2 := newTestStore(t)

	item1, err := s.AddToCart(u.ID, ev1.ID, 1)
	require.NoError(t, err)
	item2, err := s.AddToCart(u.ID, ev2.ID, 1)
	require.NoError(t, err)

	require.NoError(t, s.RemoveFromCart(item1.ID, u.ID))

	items := s.CartItemsByUser(u.ID)
	require.Len(t, items, 1)
	assert.Equal(t, item2.ID, items[0].ID)

	assert.ErrorIs(t, s.RemoveFromCart(item1.ID, u.ID), ErrCartItemNotFound)
}

func TestRemoveFromCart_OtherUsersItem(t *testing.T) {
	s, u, ev, _ := newTestStore(t)
	other, err := s.CreateUser(User{Username: "other", Password: "x", FullName: "Other"})
	require.NoError(t, err)

	item, err := s.AddToCart(u.ID, ev.ID, 1)
	require.NoError(t, err)

	assert.ErrorIs(t, s.RemoveFromCart(item.ID, other.ID), ErrCartItemNotFound)
	assert.Len(t, s.CartItemsByUser(u.ID), 1)
}

func TestClearCart_OnlyTouchesOwner(t *testing.T) {
	s, u, ev1, ev2 := newTestStore(t)
	other, err := s.CreateUser(User{Username: "other", Password: "x", FullName: "Other"})
	require.NoError(t, err)

	_, err = s.AddToCart(u.ID, ev1.ID, 1)
	require.NoError(t, err)
	_, err = s.AddToCart(u.ID, ev2.ID, 1)
	require.NoError(t, err)
	_, err = s.AddToCart(other.ID, ev1.ID, 1)
	require.NoError(t, err)

	assert.Equal(t, 2, s.ClearCart(u.ID))
	assert.Empty(t, s.CartItemsByUser(u.ID))
	assert.Len(t, s.CartItemsByUser(other.ID), 1)

	assert.Equal(t, 0, s.ClearCart(u.ID))
}
