package snapshot

import "context"

const refreshTokenKey = "refresh_token"

// SessionStore adapts the metadata repository to refresh-token persistence.
type SessionStore struct {
	meta *MetadataRepository
}

func NewSessionStore(meta *MetadataRepository) *SessionStore {
	return &SessionStore{meta: meta}
}

func (s *SessionStore) LoadRefreshToken(ctx context.Context) (string, error) {
	v, err := s.meta.Get(ctx, refreshTokenKey)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (s *SessionStore) SaveRefreshToken(ctx context.Context, token string) error {
	return s.meta.Set(ctx, refreshTokenKey, []byte(token))
}

func (s *SessionStore) ClearRefreshToken(ctx context.Context) error {
	return s.meta.Delete(ctx, refreshTokenKey)
}
