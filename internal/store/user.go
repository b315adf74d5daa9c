package store

// User represents an application account. Password holds the bcrypt hash,
// never the plain credential; response types in the handler layer must not
// expose it. IsOrganizer grants permission to create and manage events.
type User struct {
	ID          uint64 `json:"id"`
	Username    string `json:"username"`
	Password    string `json:"-"`
	FullName    string `json:"fullName"`
	IsOrganizer bool   `json:"isOrganizer"`
}

// CreateUser assigns the next user id and stores the record. Usernames are
// unique; a duplicate yields ErrUsernameTaken. The uniqueness check and the
// insert run under one write lock so concurrent registrations of the same
// username cannot both succeed.
func (s *Store) CreateUser(u User) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Username == u.Username {
			return User{}, ErrUsernameTaken
		}
	}
	s.userSeq++
	u.ID = s.userSeq
	s.users[u.ID] = u
	return u, nil
}

// GetUser returns the user with the given id or ErrUserNotFound.
func (s *Store) GetUser(id uint64) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return u, nil
}

// GetUserByUsername scans for a user by username.
func (s *Store) GetUserByUsername(username string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return User{}, ErrUserNotFound
}
