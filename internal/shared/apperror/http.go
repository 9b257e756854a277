package apperror

import "errors"

// HTTPError is the rendered form of a failure.
type HTTPError struct {
	Status    int
	Code      string
	Message   string
	SubErrors []string
}

// ToHTTP classifies err and returns the status, code, message and sub-errors
// to send. Anything that is not an AppError is treated as internal and keeps
// its own message.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case KindNotFound, KindConflict:
			return HTTPError{
				Status:    appErr.Kind.Status(),
				Code:      appErr.Kind.code(),
				Message:   appErr.Message,
				SubErrors: []string{},
			}
		case KindValidation:
			subs := appErr.SubErrors
			if subs == nil {
				subs = []string{}
			}
			return HTTPError{
				Status:    appErr.Kind.Status(),
				Code:      appErr.Kind.code(),
				Message:   ValidationMessage,
				SubErrors: subs,
			}
		}
	}

	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return HTTPError{
		Status:    KindInternal.Status(),
		Code:      CodeInternalError,
		Message:   msg,
		SubErrors: []string{},
	}
}
