package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidJSON = errors.New("invalid JSON response from provider")
	ErrProvider    = errors.New("provider reported failure")
)

// rawPrefixLimit bounds how much of an unparseable body is echoed back.
const rawPrefixLimit = 200

// InvalidJSONError is returned when the provider body cannot be parsed.
// Raw holds at most the first 200 characters of the body.
type InvalidJSONError struct {
	Raw string
	Err error
}

func (e *InvalidJSONError) Error() string {
	return fmt.Sprintf("%v: %v", ErrInvalidJSON, e.Err)
}

func (e *InvalidJSONError) Unwrap() []error { return []error{ErrInvalidJSON, e.Err} }

// ProviderError is returned when the provider answers with success=false.
// Info is the provider's "error" member as decoded JSON, nil if it sent none.
type ProviderError struct {
	Info interface{}
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%v: %v", ErrProvider, e.Info)
}

func (e *ProviderError) Unwrap() error { return ErrProvider }

// truncateRaw returns the first rawPrefixLimit characters of body.
func truncateRaw(body []byte) string {
	r := []rune(string(body))
	if len(r) > rawPrefixLimit {
		r = r[:rawPrefixLimit]
	}
	return string(r)
}
