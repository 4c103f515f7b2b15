package httperr

import "errors"

// BusinessError is a domain outcome, not a fault. Usecases return these and
// handlers map the code to a status: slot_conflict -> 409, *_not_found -> 404,
// tx_timeout -> 503, everything else -> 400.
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
