package store

import (
	"encoding/json"
	"fmt"

	"busjo/internal/domain/models"
)

const sessionKeyPrefix = "currentUser:"

// SessionStore persists the active user record per account. Absence means
// guest mode. Balance updates land here, not in the dataset.
type SessionStore struct {
	KV KV
}

func (s SessionStore) Load(userID string) (models.User, bool, error) {
	raw, ok, err := s.KV.Get(sessionKeyPrefix + userID)
	if err != nil {
		return models.User{}, false, fmt.Errorf("load session %s: %w", userID, err)
	}
	if !ok {
		return models.User{}, false, nil
	}
	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return models.User{}, false, fmt.Errorf("parse session %s: %w", userID, err)
	}
	return u, true, nil
}

func (s SessionStore) Save(u models.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}
	if err := s.KV.Put(sessionKeyPrefix+u.UserID, raw); err != nil {
		return fmt.Errorf("save session %s: %w", u.UserID, err)
	}
	return nil
}

func (s SessionStore) Clear(userID string) error {
	return s.KV.Delete(sessionKeyPrefix + userID)
}
