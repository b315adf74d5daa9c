// Sentinel errors reused across the store. Handlers translate these into
// HTTP statuses: not-found values become 404, ErrForbidden becomes 403 so a
// caller is told the record exists but is not theirs, which is distinct from
// "no such record".
package store

import "errors"

// ErrUserNotFound is returned when a user id or username does not resolve.
var ErrUserNotFound = errors.New("user not found")

// ErrUsernameTaken is returned by CreateUser when the username is already
// registered. Handlers translate this into HTTP 409.
var ErrUsernameTaken = errors.New("username already taken")

// ErrEventTypeNotFound is returned when an event type id does not resolve.
var ErrEventTypeNotFound = errors.New("event type not found")

// ErrEventNotFound is returned when an event id does not resolve, including
// from AddToCart and Register which refuse to reference a missing event.
var ErrEventNotFound = errors.New("event not found")

// ErrCartItemNotFound is returned when a cart item id does not resolve.
var ErrCartItemNotFound = errors.New("cart item not found")

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own, such as updating another organizer's event.
var ErrForbidden = errors.New("forbidden")

// ErrNotOrganizer is returned by CreateEvent when the organizer id does not
// belong to a user with the organizer flag set.
var ErrNotOrganizer = errors.New("user is not an organizer")

// ErrRefreshNotFound is returned when a refresh token hash is unknown or
// has expired.
var ErrRefreshNotFound = errors.New("refresh token not found")
