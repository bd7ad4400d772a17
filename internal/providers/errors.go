package providers

import (
	"errors"
	"fmt"
)

var (
	ErrFieldMissing     = errors.New("field missing from response")
	ErrCurrencyNotFound = errors.New("currency code not found")
)

// ConnectionError aborts the current action. It covers transport failures and
// non-2xx upstream responses alike.
type ConnectionError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *ConnectionError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("connection error while connecting to: %s: status code %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("connection error while connecting to: %s: %v", e.URL, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}
