package grpcserver

import (
	"google.golang.org/protobuf/types/known/structpb"
)

// Поля ответа Shorten
const (
	shortURLField      = "short_url"
	alreadyExistsField = "already_exists"
)

// ShortenResult ответ Shorten на стороне клиента
type ShortenResult struct {
	ShortURL      string
	AlreadyExists bool
}

func newShortenResponse(shortURL string, alreadyExists bool) *structpb.Struct {
	return &structpb.Struct{
		Fields: map[string]*structpb.Value{
			shortURLField:      structpb.NewStringValue(shortURL),
			alreadyExistsField: structpb.NewBoolValue(alreadyExists),
		},
	}
}

func parseShortenResponse(resp *structpb.Struct) ShortenResult {
	fields := resp.GetFields()
	return ShortenResult{
		ShortURL:      fields[shortURLField].GetStringValue(),
		AlreadyExists: fields[alreadyExistsField].GetBoolValue(),
	}
}
