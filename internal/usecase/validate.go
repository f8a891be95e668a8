package usecase

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/avc-dev/shortlink/internal/model"
)

// normalizeURL очищает URL от пробелов и кавычек и проверяет схему и хост
func normalizeURL(urlString string) (model.URL, error) {
	urlString = strings.TrimSpace(urlString)
	urlString = strings.Trim(urlString, `"'`)

	if urlString == "" {
		return "", ErrEmptyURL
	}

	parsedURL, err := url.Parse(urlString)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return "", fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return "", fmt.Errorf("%w: host is missing", ErrInvalidURL)
	}

	return model.URL(urlString), nil
}

func (u *URLUsecase) shortURL(code model.Code) (string, error) {
	shortURL, err := url.JoinPath(u.cfg.BaseURL.String(), code.String())
	if err != nil {
		return "", fmt.Errorf("%w: failed to build short URL: %w", ErrServiceUnavailable, err)
	}
	return shortURL, nil
}
