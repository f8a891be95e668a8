package model

import "time"

// Code короткий идентификатор ссылки
type Code string

func (c Code) String() string {
	return string(c)
}

// URL оригинальный адрес, на который ведет короткая ссылка
type URL string

func (u URL) String() string {
	return string(u)
}

// ShortLink запись хранилища: код однозначно и неизменно указывает на Target
type ShortLink struct {
	Code      Code
	Target    URL
	UserID    string
	CreatedAt time.Time
	Deleted   bool
}

// URLEntry представляет запись URL с уникальным идентификатором для хранения в файле
type URLEntry struct {
	UUID        string    `json:"uuid"`
	ShortURL    string    `json:"short_url"`
	OriginalURL string    `json:"original_url"`
	UserID      string    `json:"user_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	IsDeleted   bool      `json:"is_deleted,omitempty"`
}

// ShortenRequest тело запроса POST /api/shorten
type ShortenRequest struct {
	URL string `json:"url" validate:"required"`
}

// ShortenResponse тело ответа POST /api/shorten
type ShortenResponse struct {
	Result string `json:"result"`
}

// BatchShortenRequest представляет элемент запроса для батчевого сокращения URL
type BatchShortenRequest struct {
	CorrelationID string `json:"correlation_id" validate:"required"`
	OriginalURL   string `json:"original_url" validate:"required"`
}

// BatchShortenResponse представляет элемент ответа для батчевого сокращения URL
type BatchShortenResponse struct {
	CorrelationID string `json:"correlation_id"`
	ShortURL      string `json:"short_url"`
}

// UserURLResponse элемент ответа GET /api/user/urls
type UserURLResponse struct {
	ShortURL    string `json:"short_url"`
	OriginalURL string `json:"original_url"`
}
