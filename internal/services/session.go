package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/aaravmahajanofficial/grocery-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/boxes"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/cart"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/errors"
	"github.com/aaravmahajanofficial/grocery-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/grocery-storefront/internal/repositories"
)

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

// sessionLocks hands out one mutex per session id and forgets it once the
// last holder releases it.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*sessionLock
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{locks: make(map[string]*sessionLock)}
}

func (l *sessionLocks) lock(sessionID string) func() {
	l.mu.Lock()
	entry, ok := l.locks[sessionID]
	if !ok {
		entry = &sessionLock{}
		l.locks[sessionID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, sessionID)
		}
		l.mu.Unlock()
	}
}

// SessionStore reads and writes the per-session snapshots (cart, saved boxes,
// draft, language). Services sharing a store also share its session locks, so
// a read-modify-write on one session never interleaves with another.
type SessionStore struct {
	repo  repository.SessionRepository
	locks *sessionLocks
}

func NewSessionStore(repo repository.SessionRepository) *SessionStore {
	return &SessionStore{repo: repo, locks: newSessionLocks()}
}

// Lock serializes mutations for one session. Call the returned func to release.
func (s *SessionStore) Lock(sessionID string) func() {
	return s.locks.lock(sessionID)
}

func (s *SessionStore) load(ctx context.Context, snapshot, sessionID string) ([]byte, error) {
	data, err := s.repo.Load(ctx, snapshot, sessionID)
	if err != nil {
		return nil, errors.ThirdPartyError("Failed to load session data").WithError(err)
	}

	return data, nil
}

func (s *SessionStore) save(ctx context.Context, snapshot, sessionID string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.InternalError("Failed to encode session data").WithError(err)
	}

	if err := s.repo.Save(ctx, snapshot, sessionID, data); err != nil {
		return errors.ThirdPartyError("Failed to save session data").WithError(err)
	}

	return nil
}

func warnCorrupt(ctx context.Context, snapshot string, err error) {
	middleware.LoggerFromContext(ctx).Warn("Discarding unreadable session snapshot",
		slog.String("snapshot", snapshot),
		slog.String("error", err.Error()))
}

func (s *SessionStore) loadLedger(ctx context.Context, sessionID string) (*cart.Ledger, error) {
	data, err := s.load(ctx, repository.CartSnapshot, sessionID)
	if err != nil {
		return nil, err
	}

	ledger, err := cart.Decode(data)
	if err != nil {
		warnCorrupt(ctx, repository.CartSnapshot, err)
	}

	return ledger, nil
}

// discard drops a snapshot entirely; the next load reads it as empty.
func (s *SessionStore) discard(ctx context.Context, snapshot, sessionID string) error {
	if err := s.repo.Delete(ctx, snapshot, sessionID); err != nil {
		return errors.ThirdPartyError("Failed to clear session data").WithError(err)
	}

	return nil
}

func (s *SessionStore) saveLedger(ctx context.Context, sessionID string, ledger *cart.Ledger) error {
	return s.save(ctx, repository.CartSnapshot, sessionID, ledger)
}

func (s *SessionStore) loadCollection(ctx context.Context, sessionID string) (*boxes.Collection, error) {
	data, err := s.load(ctx, repository.BoxesSnapshot, sessionID)
	if err != nil {
		return nil, err
	}

	collection, err := boxes.DecodeCollection(data)
	if err != nil {
		warnCorrupt(ctx, repository.BoxesSnapshot, err)
	}

	return collection, nil
}

func (s *SessionStore) saveCollection(ctx context.Context, sessionID string, collection *boxes.Collection) error {
	return s.save(ctx, repository.BoxesSnapshot, sessionID, collection)
}

func (s *SessionStore) loadDraft(ctx context.Context, sessionID string) (*boxes.Draft, error) {
	data, err := s.load(ctx, repository.DraftSnapshot, sessionID)
	if err != nil {
		return nil, err
	}

	draft, err := boxes.DecodeDraft(data)
	if err != nil {
		warnCorrupt(ctx, repository.DraftSnapshot, err)
	}

	return draft, nil
}

func (s *SessionStore) saveDraft(ctx context.Context, sessionID string, draft *boxes.Draft) error {
	return s.save(ctx, repository.DraftSnapshot, sessionID, draft)
}

// loadLanguage falls back to Arabic for a missing or unrecognised value.
func (s *SessionStore) loadLanguage(ctx context.Context, sessionID string) (models.Language, error) {
	data, err := s.load(ctx, repository.LanguageSnapshot, sessionID)
	if err != nil {
		return "", err
	}

	if len(data) == 0 {
		return models.LanguageArabic, nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		warnCorrupt(ctx, repository.LanguageSnapshot, err)

		return models.LanguageArabic, nil
	}

	return models.ParseLanguage(raw), nil
}

func (s *SessionStore) saveLanguage(ctx context.Context, sessionID string, lang models.Language) error {
	return s.save(ctx, repository.LanguageSnapshot, sessionID, lang)
}
