package common

import (
	"errors"
	"fmt"
)

// Common application errors
var (
	ErrNoText          = errors.New("no text recognized")
	ErrInvalidStrategy = errors.New("invalid extraction strategy")
	ErrInvalidRuleset  = errors.New("invalid ruleset")
)

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
