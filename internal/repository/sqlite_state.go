package repository

import (
	"context"

	"github.com/alexanderramin/learnpath/internal/db"
	"github.com/alexanderramin/learnpath/internal/domain"
)

// SQLiteStateRepo implements StateRepo over the kv_store table.
type SQLiteStateRepo struct {
	db db.DBTX
}

func NewSQLiteStateRepo(conn db.DBTX) *SQLiteStateRepo {
	return &SQLiteStateRepo{db: conn}
}

func (r *SQLiteStateRepo) LoadUser(ctx context.Context) (*domain.User, error) {
	var u domain.User
	found, err := getJSON(ctx, r.db, KeyUser, &u)
	if err != nil || !found {
		return nil, err
	}
	return &u, nil
}

func (r *SQLiteStateRepo) SaveUser(ctx context.Context, u *domain.User) error {
	if u == nil {
		return deleteKey(ctx, r.db, KeyUser)
	}
	return putJSON(ctx, r.db, KeyUser, u)
}

func (r *SQLiteStateRepo) LoadPlans(ctx context.Context) ([]*domain.LearningPlan, error) {
	var plans []*domain.LearningPlan
	if _, err := getJSON(ctx, r.db, KeyPlans, &plans); err != nil {
		return nil, err
	}
	if plans == nil {
		plans = []*domain.LearningPlan{}
	}
	return plans, nil
}

func (r *SQLiteStateRepo) SavePlans(ctx context.Context, plans []*domain.LearningPlan) error {
	if plans == nil {
		plans = []*domain.LearningPlan{}
	}
	return putJSON(ctx, r.db, KeyPlans, plans)
}

func (r *SQLiteStateRepo) LoadCurrentPlan(ctx context.Context) (string, error) {
	var id string
	if _, err := getJSON(ctx, r.db, KeyCurrentPlan, &id); err != nil {
		return "", err
	}
	return id, nil
}

// SaveCurrentPlan records the selected plan; an empty id clears it.
func (r *SQLiteStateRepo) SaveCurrentPlan(ctx context.Context, planID string) error {
	if planID == "" {
		return deleteKey(ctx, r.db, KeyCurrentPlan)
	}
	return putJSON(ctx, r.db, KeyCurrentPlan, planID)
}

// Clear removes the user, plans and current plan entries.
func (r *SQLiteStateRepo) Clear(ctx context.Context) error {
	for _, key := range []string{KeyUser, KeyPlans, KeyCurrentPlan} {
		if err := deleteKey(ctx, r.db, key); err != nil {
			return err
		}
	}
	return nil
}
