package cli

import "errors"

var (
	errRequired       = errors.New("required")
	errNotInteractive = errors.New("not an interactive terminal")
	errQuizAbandoned  = errors.New("quiz abandoned")
)
