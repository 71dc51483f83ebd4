package service

import "errors"

var (
	ErrNotLoggedIn       = errors.New("not logged in")
	ErrEmptyField        = errors.New("field must not be empty")
	ErrPasswordMismatch  = errors.New("passwords do not match")
	ErrNotFound          = errors.New("not found")
	ErrAmbiguousID       = errors.New("ambiguous id")
	ErrNoCurrentPlan     = errors.New("no current plan")
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	ErrInvalidSentiment  = errors.New("invalid sentiment")
	ErrQuizNotFinished   = errors.New("quiz not finished")
	ErrAlreadyRecorded   = errors.New("quiz attempt already recorded")
	ErrInvalidPlanFile   = errors.New("invalid plan file")
)
