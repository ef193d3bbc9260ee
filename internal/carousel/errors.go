package carousel

import "fmt"

// ConfigurationError reports a setup the controller cannot run with.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("carousel configuration: %s", e.Reason)
}

func configErr(format string, args ...any) error {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}
