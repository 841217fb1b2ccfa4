package service

import (
	"context"

	"github.com/aaravmahajanofficial/grocery-storefront/internal/models"
)

type PreferenceService interface {
	GetLanguage(ctx context.Context, sessionID string) (models.Language, error)
	SetLanguage(ctx context.Context, sessionID string, lang models.Language) (models.Language, error)
}

type preferenceService struct {
	sessions *SessionStore
}

func NewPreferenceService(sessions *SessionStore) PreferenceService {
	return &preferenceService{sessions: sessions}
}

func (s *preferenceService) GetLanguage(ctx context.Context, sessionID string) (models.Language, error) {
	return s.sessions.loadLanguage(ctx, sessionID)
}

// SetLanguage stores the choice; anything unrecognised is stored as Arabic.
func (s *preferenceService) SetLanguage(ctx context.Context, sessionID string, lang models.Language) (models.Language, error) {
	lang = models.ParseLanguage(string(lang))

	unlock := s.sessions.Lock(sessionID)
	defer unlock()

	if err := s.sessions.saveLanguage(ctx, sessionID, lang); err != nil {
		return "", err
	}

	return lang, nil
}
