package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/learnpath/internal/domain"
	"github.com/spf13/pflag"
)

// difficultyValue is a pflag.Value that only accepts known difficulties.
type difficultyValue domain.Difficulty

var _ pflag.Value = (*difficultyValue)(nil)

func newDifficultyValue(def domain.Difficulty, p *domain.Difficulty) *difficultyValue {
	*p = def
	return (*difficultyValue)(p)
}

func (d *difficultyValue) String() string { return string(*d) }

func (d *difficultyValue) Set(s string) error {
	v := domain.Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if !v.Valid() {
		return fmt.Errorf("must be one of beginner, intermediate, advanced")
	}
	*d = difficultyValue(v)
	return nil
}

func (d *difficultyValue) Type() string { return "difficulty" }

// sentimentValue is a pflag.Value for task sentiment tags.
type sentimentValue domain.Sentiment

var _ pflag.Value = (*sentimentValue)(nil)

func (s *sentimentValue) String() string { return string(*s) }

func (s *sentimentValue) Set(v string) error {
	sent := domain.Sentiment(strings.ToLower(strings.TrimSpace(v)))
	if !domain.ValidSentiments[string(sent)] {
		return fmt.Errorf("must be one of positive, neutral, negative")
	}
	*s = sentimentValue(sent)
	return nil
}

func (s *sentimentValue) Type() string { return "sentiment" }
