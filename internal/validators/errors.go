package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle        = errors.New("title is required")
	ErrTitleTooLong      = errors.New("title is too long")
	ErrEmptyTag          = errors.New("tags cannot contain empty values")
	ErrTooManyTags       = errors.New("too many tags")
	ErrEmptyQuoteContent = errors.New("quote content is required")
	ErrInvalidImageURL   = errors.New("image url must be an absolute http(s) url")
	ErrEmptyLogin        = errors.New("login is required")
	ErrEmptyPassword     = errors.New("password is required")
)
