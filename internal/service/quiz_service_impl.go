package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/learnpath/internal/db"
	"github.com/alexanderramin/learnpath/internal/domain"
	"github.com/alexanderramin/learnpath/internal/gamification"
	"github.com/alexanderramin/learnpath/internal/quiz"
	"github.com/alexanderramin/learnpath/internal/repository"
	"github.com/google/uuid"
)

type quizService struct {
	session   *Session
	attempts  repository.QuizAttemptRepo
	uow       db.UnitOfWork
	timeLimit int
	observer  UseCaseObserver

	recorded map[string]bool
}

// NewQuizService creates quizzes with the given countdown in seconds; a
// non-positive limit keeps the generator default.
func NewQuizService(session *Session, attempts repository.QuizAttemptRepo, uow db.UnitOfWork, timeLimit int, observers ...UseCaseObserver) QuizService {
	return &quizService{
		session:   session,
		attempts:  attempts,
		uow:       uow,
		timeLimit: timeLimit,
		observer:  useCaseObserverOrNoop(observers),
		recorded:  make(map[string]bool),
	}
}

func (s *quizService) Start(field string, difficulty domain.Difficulty) (*quiz.Run, error) {
	field = strings.TrimSpace(field)
	if field == "" {
		return nil, ErrEmptyField
	}
	if !difficulty.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDifficulty, difficulty)
	}
	q := quiz.WithTimeLimit(quiz.Generate(field, difficulty), s.timeLimit)
	return quiz.NewRun(q), nil
}

// Complete records a finished run. A signed-in user is credited the rounded
// score in points, which runs the level-up check, and earns a Quiz Master
// badge at 80% or more.
func (s *quizService) Complete(ctx context.Context, run *quiz.Run) (out *QuizOutcome, err error) {
	q := run.Quiz()
	fields := map[string]any{"quiz_id": q.ID, "field": q.Field}
	defer track(ctx, s.observer, "complete-quiz", fields)(&err)

	res, finished := run.Result()
	if !finished {
		return nil, ErrQuizNotFinished
	}
	fields["score"] = res.Score
	fields["timed_out"] = run.TimedOut()

	s.session.mu.Lock()
	defer s.session.mu.Unlock()

	if s.recorded[q.ID] {
		return nil, ErrAlreadyRecorded
	}

	now := time.Now().UTC()
	attempt := &domain.QuizAttempt{
		ID:         uuid.New().String(),
		QuizID:     q.ID,
		Field:      q.Field,
		Difficulty: q.Difficulty,
		Correct:    res.Correct,
		Total:      res.Total,
		Score:      res.Score,
		TimedOut:   run.TimedOut(),
		FinishedAt: now,
	}

	user := s.session.user.Clone()
	var badges []domain.Badge
	if user != nil {
		attempt.PointsAwarded = res.Points()
		badges = gamification.AddPoints(user, res.Points(), now)
		if b := gamification.AwardQuizBadge(user, res.Score, q.Field, now); b != nil {
			badges = append(badges, *b)
		}
		fields["points"] = user.Points
		fields["new_badges"] = len(badges)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteQuizAttemptRepo(tx).Create(ctx, attempt); err != nil {
			return err
		}
		if user == nil {
			return nil
		}
		return repository.NewSQLiteStateRepo(tx).SaveUser(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	s.recorded[q.ID] = true
	s.session.user = user
	return &QuizOutcome{
		Attempt:   attempt,
		Result:    res,
		User:      user.Clone(),
		NewBadges: badges,
	}, nil
}

func (s *quizService) History(ctx context.Context, limit int) ([]*domain.QuizAttempt, error) {
	return s.attempts.ListRecent(ctx, limit)
}
