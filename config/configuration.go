package config

import (
	"errors"
	"fmt"
)

var (
	ErrMissingArgument     = errors.New("missing argument")
	ErrMissingSensorId     = fmt.Errorf("%w: sensorId is required", ErrMissingArgument)
	ErrMissingFriendlyName = fmt.Errorf("%w: friendlyName is required", ErrMissingArgument)
	ErrTooManyArguments    = errors.New("too many arguments")
)

// FromArgs loads a Multisensor from the positional arguments <sensorId> <friendlyName>.
func FromArgs(args []string) (*Multisensor, error) {
	switch {
	case len(args) == 0:
		return nil, ErrMissingSensorId
	case len(args) == 1:
		return nil, ErrMissingFriendlyName
	case len(args) > 2:
		return nil, fmt.Errorf("%w: expected 2, received %v", ErrTooManyArguments, len(args))
	}

	return New(args[0], args[1]), nil
}
