package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/learnpath/internal/db"
	"github.com/alexanderramin/learnpath/internal/domain"
	"github.com/alexanderramin/learnpath/internal/repository"
	"github.com/google/uuid"
)

type authService struct {
	session  *Session
	uow      db.UnitOfWork
	observer UseCaseObserver
}

// NewAuthService signs users in and out. There is no credential store:
// login and signup create a fresh user record from what was entered.
func NewAuthService(session *Session, uow db.UnitOfWork, observers ...UseCaseObserver) AuthService {
	return &authService{
		session:  session,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (user *domain.User, err error) {
	email = strings.TrimSpace(email)
	defer track(ctx, s.observer, "login", map[string]any{"email": email})(&err)

	return s.signIn(ctx, domain.NameFromEmail(email), email)
}

func (s *authService) Signup(ctx context.Context, name, email, password, confirm string) (user *domain.User, err error) {
	email = strings.TrimSpace(email)
	defer track(ctx, s.observer, "signup", map[string]any{"email": email})(&err)

	if password != confirm {
		return nil, ErrPasswordMismatch
	}
	name = domain.CoalesceStr(strings.TrimSpace(name), domain.NameFromEmail(email))
	return s.signIn(ctx, name, email)
}

func (s *authService) signIn(ctx context.Context, name, email string) (*domain.User, error) {
	user := &domain.User{
		ID:          uuid.New().String(),
		Email:       email,
		Name:        name,
		Points:      0,
		Level:       1,
		Badges:      []domain.Badge{},
		Preferences: domain.DefaultPreferences(),
		JoinedAt:    time.Now().UTC(),
	}

	s.session.mu.Lock()
	defer s.session.mu.Unlock()

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteStateRepo(tx).SaveUser(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	s.session.user = user
	return user.Clone(), nil
}

// Logout forgets the user, every plan and the current plan.
func (s *authService) Logout(ctx context.Context) (err error) {
	defer track(ctx, s.observer, "logout", nil)(&err)

	s.session.mu.Lock()
	defer s.session.mu.Unlock()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteStateRepo(tx).Clear(ctx)
	})
	if err != nil {
		return err
	}
	s.session.user = nil
	s.session.plans = []*domain.LearningPlan{}
	s.session.currentPlanID = ""
	return nil
}

func (s *authService) Current(ctx context.Context) (*domain.User, error) {
	u := s.session.User()
	if u == nil {
		return nil, ErrNotLoggedIn
	}
	return u, nil
}
