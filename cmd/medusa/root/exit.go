package root

import (
	"errors"

	"medusa/internal/chore"
)

const (
	exitFailure       = 1
	exitLoad          = 2
	exitInvalidConfig = 3
	exitNoEligible    = 4
)

// exitCode keeps the failure kinds apart for scripts calling medusa.
func exitCode(err error) int {
	var loadErr *chore.LoadError
	var cfgErr *chore.InvalidConfigurationError
	switch {
	case errors.As(err, &loadErr):
		return exitLoad
	case errors.As(err, &cfgErr):
		return exitInvalidConfig
	case errors.Is(err, chore.ErrNoEligibleChores):
		return exitNoEligible
	default:
		return exitFailure
	}
}
