package countrycode

import (
	"fmt"

	"github.com/rotisserie/eris"
)

// ErrUnknownCode is matched by every error Resolve returns for a missing code.
var ErrUnknownCode = eris.New("unknown country code")

// UnknownCodeError reports the code that failed to resolve.
type UnknownCodeError struct {
	Code string
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("countrycode: unknown code %q", e.Code)
}

func (e *UnknownCodeError) Unwrap() error {
	return ErrUnknownCode
}
