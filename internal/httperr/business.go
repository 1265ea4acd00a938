package httperr

import "errors"

// BusinessError is an expected domain failure, distinguished from storage
// failures by code. Anything that is not a BusinessError maps to 500.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

const (
	CodeNotFound            = "not_found"
	CodeDuplicateCredential = "duplicate_credential"
	CodeInvalidCredentials  = "invalid_credentials"
)
