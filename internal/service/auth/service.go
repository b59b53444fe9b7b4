package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/medhq/hms-api/internal/model"
	"github.com/medhq/hms-api/internal/service/audit"
	"github.com/medhq/hms-api/internal/session"
	"github.com/medhq/hms-api/pkg/metrics"
	"github.com/medhq/hms-api/pkg/security"
)

var (
	// ErrInvalidCredentials is the normal negative result of a login
	// attempt, surfaced to the user as an inline message.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrLoginInFlight rejects a second login for the same email while one
	// is still outstanding.
	ErrLoginInFlight = errors.New("login already in progress")
)

const bcryptCost = 10

// account is one entry in the fixed allow-list. There is exactly one
// account per role; no registration path exists.
type account struct {
	userID       string
	displayName  string
	email        string
	passwordHash string
	role         model.Role
}

type Service struct {
	store    session.Store
	auditor  *audit.Service
	hasher   security.PasswordHasher
	metrics  *metrics.AuthMetrics
	ttl      time.Duration
	delay    time.Duration
	accounts []account

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewService builds the auth service over the fixed demo allow-list. The
// delay simulates the latency of a remote credential check and honors
// context cancellation.
func NewService(store session.Store, auditor *audit.Service, m *metrics.AuthMetrics, ttl, delay time.Duration) (*Service, error) {
	hasher := security.NewBcryptHasher(bcryptCost)
	accounts, err := demoAccounts(hasher)
	if err != nil {
		return nil, err
	}
	return &Service{
		store:    store,
		auditor:  auditor,
		hasher:   hasher,
		metrics:  m,
		ttl:      ttl,
		delay:    delay,
		accounts: accounts,
		inFlight: make(map[string]struct{}),
	}, nil
}

func demoAccounts(hasher security.PasswordHasher) ([]account, error) {
	demo := []struct {
		id, name, email string
		role            model.Role
	}{
		{"1", "Admin User", "admin@hospital.com", model.RoleAdmin},
		{"2", "Doctor User", "doctor@hospital.com", model.RoleDoctor},
		{"3", "Nurse User", "nurse@hospital.com", model.RoleNurse},
	}

	accounts := make([]account, 0, len(demo))
	for _, d := range demo {
		hash, err := hasher.Hash("password")
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account{
			userID:       d.id,
			displayName:  d.name,
			email:        d.email,
			passwordHash: hash,
			role:         d.role,
		})
	}
	return accounts, nil
}

// Login validates credentials against the allow-list. On success it writes
// a session record to the store and returns the session with its ID. A
// cancelled context aborts before any state is written.
func (s *Service) Login(ctx context.Context, email, password string) (string, *model.Session, error) {
	if !s.begin(email) {
		return "", nil, ErrLoginInFlight
	}
	defer s.finish(email)

	// Simulated verification latency; abandoning the request makes the
	// whole attempt a no-op.
	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return "", nil, ctx.Err()
		case <-time.After(s.delay):
		}
	}

	acct, ok := s.lookup(email)
	if !ok {
		s.metrics.ObserveLogin(false)
		return "", nil, ErrInvalidCredentials
	}
	if err := s.hasher.Compare(acct.passwordHash, password); err != nil {
		s.metrics.ObserveLogin(false)
		s.auditor.Record(ctx, audit.Entry{
			User:     email,
			Action:   "login",
			Resource: "auth",
			Details:  "invalid credentials",
			Status:   model.AuditStatusFailure,
			Category: model.AuditCategorySecurity,
		})
		return "", nil, ErrInvalidCredentials
	}

	sess := &model.Session{
		UserID:      acct.userID,
		DisplayName: acct.displayName,
		Email:       acct.email,
		Role:        acct.role,
	}

	sessionID := uuid.New().String()
	if err := s.store.Save(ctx, sessionID, sess, s.ttl); err != nil {
		return "", nil, err
	}

	s.metrics.ObserveLogin(true)
	s.metrics.SessionOpened()

	s.auditor.Record(ctx, audit.Entry{
		User:       sess.DisplayName,
		UserRole:   string(sess.Role),
		Action:     "login",
		Resource:   "auth",
		ResourceID: sess.UserID,
		Details:    "successful login",
		Category:   model.AuditCategorySecurity,
	})

	return sessionID, sess, nil
}

// Logout clears the stored session. Deleting an absent session is not an
// error, so calling it twice has the same effect as once.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil && !errors.Is(err, session.ErrNotFound) {
		return err
	}

	if err := s.store.Delete(ctx, sessionID); err != nil {
		return err
	}

	if sess != nil {
		s.metrics.SessionClosed()
		s.auditor.Record(ctx, audit.Entry{
			User:       sess.DisplayName,
			UserRole:   string(sess.Role),
			Action:     "logout",
			Resource:   "auth",
			ResourceID: sess.UserID,
			Details:    "logged out",
			Category:   model.AuditCategorySecurity,
		})
	}
	return nil
}

// Resolve loads the session for an ID; absent or corrupt records resolve to
// (nil, nil) so callers proceed as anonymous.
func (s *Service) Resolve(ctx context.Context, sessionID string) (*model.Session, error) {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return sess, nil
}

func (s *Service) lookup(email string) (account, bool) {
	for _, acct := range s.accounts {
		if acct.email == email {
			return acct, true
		}
	}
	return account{}, false
}

func (s *Service) begin(email string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[email]; busy {
		return false
	}
	s.inFlight[email] = struct{}{}
	return true
}

func (s *Service) finish(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, email)
}
