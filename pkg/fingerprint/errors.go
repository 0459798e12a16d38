package fingerprint

import "fmt"

// ConfigurationError reports one or more invalid option values supplied to
// a Builder or, downstream, a DuplicateFinder — collected via multierr so a
// caller that misconfigures more than one field sees every problem at once
// instead of fixing them one at a time.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("fingerprint: invalid configuration: %s", e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }
