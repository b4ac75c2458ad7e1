package sdk

import (
	"errors"
	"fmt"
)

// ErrConfigurationMissing is matched by every error returned when no SDK
// path could be determined.
var ErrConfigurationMissing = errors.New("configuration missing")

// MissingError reports which sources were consulted without success.
type MissingError struct {
	PropertiesFile string
	Key            string
	Variable       string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("Flutter SDK not found. Define %s in %s or set %s.", e.Key, e.PropertiesFile, e.Variable)
}

func (e *MissingError) Is(target error) bool { return target == ErrConfigurationMissing }
