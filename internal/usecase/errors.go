package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidURL         = errors.New("invalid URL")
	ErrEmptyURL           = errors.New("empty URL")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrURLNotFound        = errors.New("URL not found")
	ErrURLDeleted         = errors.New("URL deleted")
)

// URLAlreadyExistsError возвращается, когда оригинальный URL уже сокращен
type URLAlreadyExistsError struct {
	shortURL string
}

func NewURLAlreadyExistsError(shortURL string) URLAlreadyExistsError {
	return URLAlreadyExistsError{shortURL: shortURL}
}

func (e URLAlreadyExistsError) Error() string {
	return fmt.Sprintf("URL already exists: %s", e.shortURL)
}

// ExistingURL возвращает ранее выданный короткий URL
func (e URLAlreadyExistsError) ExistingURL() string {
	return e.shortURL
}
