package apperr

// ValidationError marks parsed ratings that fail schema constraints.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// ExtractionError marks replies from which no parseable JSON payload could be
// recovered.
type ExtractionError struct {
	Message string
	Err     error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

func NewExtraction(msg string) *ExtractionError {
	return &ExtractionError{Message: msg}
}

// ConfigError marks construction-time failures: a missing credential, a
// missing required file or directory.
type ConfigError struct {
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func NewConfig(msg string) *ConfigError {
	return &ConfigError{Message: msg}
}

func NewConfigWrap(msg string, err error) *ConfigError {
	return &ConfigError{Message: msg, Err: err}
}

// TransportError marks backend call failures: unreachable endpoints, error
// statuses, timeouts.
type TransportError struct {
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func NewTransport(msg string) *TransportError {
	return &TransportError{Message: msg}
}

func NewTransportWrap(msg string, err error) *TransportError {
	return &TransportError{Message: msg, Err: err}
}
