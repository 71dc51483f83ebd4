package quiz

import (
	"errors"
	"fmt"
	"sync"

	"github.com/alexanderramin/learnpath/internal/domain"
)

var (
	ErrFinished      = errors.New("quiz already finished")
	ErrInvalidOption = errors.New("invalid option")
)

// State is the lifecycle stage of a run.
type State string

const (
	StateInProgress State = "in_progress"
	StateFinished   State = "finished"
)

// Run tracks one pass through a quiz: the current question, the selected
// answers and the countdown. Finished is terminal. Methods are safe for use
// from a ticker goroutine and an input handler at the same time.
type Run struct {
	mu        sync.Mutex
	quiz      *domain.Quiz
	current   int
	answers   []*int
	remaining int
	state     State
	timedOut  bool
	result    Result
}

// NewRun starts a run at the first question with the full time limit.
func NewRun(q *domain.Quiz) *Run {
	return &Run{
		quiz:      q,
		answers:   make([]*int, len(q.Questions)),
		remaining: q.TimeLimit,
		state:     StateInProgress,
	}
}

func (r *Run) Quiz() *domain.Quiz { return r.quiz }

// Current returns the index of the question being shown.
func (r *Run) Current() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Question returns the question being shown.
func (r *Run) Question() domain.Question {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.quiz.Questions[r.current]
}

// IsLast reports whether the current question is the last one.
func (r *Run) IsLast() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current == len(r.quiz.Questions)-1
}

func (r *Run) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Remaining returns the seconds left on the countdown.
func (r *Run) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.remaining
}

// TimedOut reports whether the countdown finished the run.
func (r *Run) TimedOut() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.timedOut
}

// Selected returns the option chosen for question i, if any.
func (r *Run) Selected(i int) (int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i < 0 || i >= len(r.answers) || r.answers[i] == nil {
		return 0, false
	}
	return *r.answers[i], true
}

// Answers returns a copy of the selected answers, indexed by question.
func (r *Run) Answers() []*int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*int, len(r.answers))
	for i, a := range r.answers {
		if a != nil {
			v := *a
			out[i] = &v
		}
	}
	return out
}

// Select records option as the answer to the current question, replacing
// any earlier choice.
func (r *Run) Select(option int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == StateFinished {
		return ErrFinished
	}
	q := r.quiz.Questions[r.current]
	if option < 0 || option >= len(q.Options) {
		return fmt.Errorf("%w: %d (question has %d options)", ErrInvalidOption, option, len(q.Options))
	}
	v := option
	r.answers[r.current] = &v
	return nil
}

// Next advances to the following question. On the last question it finishes
// the run instead and returns true.
func (r *Run) Next() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == StateFinished {
		return false
	}
	if r.current < len(r.quiz.Questions)-1 {
		r.current++
		return false
	}
	r.finishLocked(false)
	return true
}

// Previous moves back one question; it stops at the first.
func (r *Run) Previous() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == StateFinished {
		return
	}
	if r.current > 0 {
		r.current--
	}
}

// Tick consumes one second of the countdown. Reaching zero finishes the run
// with whatever answers are selected; Tick then returns true.
func (r *Run) Tick() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == StateFinished {
		return false
	}
	if r.remaining > 0 {
		r.remaining--
	}
	if r.remaining == 0 {
		r.finishLocked(true)
		return true
	}
	return false
}

// Finish scores the run. Only the first call finishes it; later calls return
// the same result with ok false.
func (r *Run) Finish() (res Result, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == StateFinished {
		return r.result, false
	}
	r.finishLocked(false)
	return r.result, true
}

// Result returns the scored result once the run has finished.
func (r *Run) Result() (Result, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.result, r.state == StateFinished
}

func (r *Run) finishLocked(timedOut bool) {
	r.result = Score(r.quiz, r.answers)
	r.timedOut = timedOut
	r.state = StateFinished
}
