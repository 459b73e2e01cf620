package validators

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-blog/models"
)

const (
	FieldTitle    = "title"
	FieldTags     = "tags"
	FieldContent  = "content"
	FieldImageURL = "image_url"
	FieldLogin    = "login"
	FieldPassword = "password"
)

const (
	maxTitleLength = 256
	maxTags        = 32
)

// BlogValidator validates articles, quotes and admin credentials.
type BlogValidator struct {
}

func NewBlogValidator() Validator {
	return &BlogValidator{}
}

func (v *BlogValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Article:
		return v.validateArticle(ctx, value, fields...)
	case *models.Article:
		return v.validateArticle(ctx, *value, fields...)

	case models.Quote:
		return v.validateQuote(ctx, value, fields...)
	case *models.Quote:
		return v.validateQuote(ctx, *value, fields...)

	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *BlogValidator) validateArticle(_ context.Context, article models.Article, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldTags}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			title := strings.TrimSpace(article.Title)
			if title == "" {
				return ErrEmptyTitle
			}
			if utf8.RuneCountInString(title) > maxTitleLength {
				return ErrTitleTooLong
			}
		case FieldTags:
			if len(article.Tags) > maxTags {
				return ErrTooManyTags
			}
			for _, tag := range article.Tags {
				if strings.TrimSpace(tag) == "" {
					return ErrEmptyTag
				}
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *BlogValidator) validateQuote(_ context.Context, quote models.Quote, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldContent, FieldImageURL}
	}

	for _, f := range fields {
		switch f {
		case FieldContent:
			if strings.TrimSpace(quote.Content) == "" {
				return ErrEmptyQuoteContent
			}
		case FieldImageURL:
			// optional
			if quote.ImageURL == "" {
				continue
			}
			u, err := url.Parse(quote.ImageURL)
			if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
				return ErrInvalidImageURL
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *BlogValidator) validateCredentials(_ context.Context, credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if strings.TrimSpace(credentials.Login) == "" {
				return ErrEmptyLogin
			}
		case FieldPassword:
			if credentials.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}
