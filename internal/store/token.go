package store

import "time"

// RefreshToken is a server-side session record. Only the SHA-256 hash of
// the raw token is stored; the raw value exists client-side only.
type RefreshToken struct {
	UserID    uint64
	Hash      string
	ExpiresAt time.Time
}

// StoreRefresh saves a refresh token hash for the user with its expiry.
func (s *Store) StoreRefresh(userID uint64, tokenHash string, exp time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshTokens[tokenHash] = RefreshToken{UserID: userID, Hash: tokenHash, ExpiresAt: exp}
}

// ValidateRefresh resolves a token hash to its user id. Expired tokens are
// removed on the way out and reported as not found.
func (s *Store) ValidateRefresh(tokenHash string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tok, ok := s.refreshTokens[tokenHash]
	if !ok {
		return 0, ErrRefreshNotFound
	}
	if time.Now().After(tok.ExpiresAt) {
		delete(s.refreshTokens, tokenHash)
		return 0, ErrRefreshNotFound
	}
	return tok.UserID, nil
}

// RevokeByHash removes one refresh token. Revoking an unknown hash is a
// no-op.
func (s *Store) RevokeByHash(tokenHash string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.refreshTokens, tokenHash)
}

// RevokeAllForUser removes every refresh token belonging to the user,
// ending all of their sessions.
func (s *Store) RevokeAllForUser(userID uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for hash, tok := range s.refreshTokens {
		if tok.UserID == userID {
			delete(s.refreshTokens, hash)
		}
	}
}
