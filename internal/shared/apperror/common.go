package apperror

// Class sentinels, for errors.Is checks against any error of the kind.
var (
	ErrNotFound   = &AppError{Kind: KindNotFound}
	ErrConflict   = &AppError{Kind: KindConflict}
	ErrValidation = &AppError{Kind: KindValidation}
)
