package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Configuration & connectivity sentinel values
var (
	ErrConfig             = errors.New("configuration error")
	ErrServiceUnreachable = errors.New("service unreachable")
)

// NewEnvironmentVariableError reports a required environment variable
// that is unset or empty.
func NewEnvironmentVariableError(varName string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        fmt.Errorf("%w: environment variable %s is not set", ErrConfig, varName),
		Details:    varName,
	}
}

// NewServiceUnreachableError wraps a network-level failure reaching a
// remote service. This is the client-side transport error: the request
// never produced an HTTP response.
func NewServiceUnreachableError(service string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusServiceUnavailable,
		err:        fmt.Errorf("%w: %s", ErrServiceUnreachable, service),
		Cause:      cause,
	}
}

func IsConfigError(err error) bool {
	return errors.Is(err, ErrConfig)
}

func IsServiceUnreachableError(err error) bool {
	return errors.Is(err, ErrServiceUnreachable)
}
