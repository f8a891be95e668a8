package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/avc-dev/shortlink/internal/config"
	"github.com/avc-dev/shortlink/internal/mocks"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestUsecase(t *testing.T) (*URLUsecase, *mocks.MockRepository, *mocks.MockURLService, *mocks.MockJobQueue) {
	t.Helper()

	mockRepo := mocks.NewMockRepository(t)
	mockService := mocks.NewMockURLService(t)
	mockJobs := mocks.NewMockJobQueue(t)

	usecase := NewURLUsecase(mockRepo, mockService, mockJobs, config.NewDefaultConfig(), zap.NewNop())
	return usecase, mockRepo, mockService, mockJobs
}

func TestCreateShortURLFromString_Success(t *testing.T) {
	tests := []struct {
		name           string
		inputURL       string
		expectedURL    string
		generatedCode  string
		expectedResult string
	}{
		{
			name:           "Valid HTTP URL",
			inputURL:       "https://example.com",
			expectedURL:    "https://example.com",
			generatedCode:  "abc12345",
			expectedResult: "http://localhost:8080/abc12345",
		},
		{
			name:           "Valid URL with path",
			inputURL:       "https://example.com/path/to/resource",
			expectedURL:    "https://example.com/path/to/resource",
			generatedCode:  "xyz98765",
			expectedResult: "http://localhost:8080/xyz98765",
		},
		{
			name:           "URL with query params",
			inputURL:       "https://example.com?param=value&other=test",
			expectedURL:    "https://example.com?param=value&other=test",
			generatedCode:  "qwerty12",
			expectedResult: "http://localhost:8080/qwerty12",
		},
		{
			name:           "URL with unicode",
			inputURL:       "https://example.com/путь",
			expectedURL:    "https://example.com/путь",
			generatedCode:  "unicode1",
			expectedResult: "http://localhost:8080/unicode1",
		},
		{
			name:           "Quoted URL with spaces",
			inputURL:       `  "https://example.com"  `,
			expectedURL:    "https://example.com",
			generatedCode:  "quoted12",
			expectedResult: "http://localhost:8080/quoted12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			usecase, _, mockService, _ := newTestUsecase(t)

			mockService.EXPECT().
				CreateShortURL(mock.Anything, model.URL(tt.expectedURL), "user-1").
				Return(model.Code(tt.generatedCode), true, nil).
				Once()

			// Act
			result, err := usecase.CreateShortURLFromString(context.Background(), tt.inputURL, "user-1")

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expectedResult, result)
		})
	}
}

func TestCreateShortURLFromString_ValidationErrors(t *testing.T) {
	tests := []struct {
		name        string
		inputURL    string
		expectedErr error
	}{
		{name: "Empty string", inputURL: "", expectedErr: ErrEmptyURL},
		{name: "Only spaces", inputURL: "   ", expectedErr: ErrEmptyURL},
		{name: "Only quotes", inputURL: `""`, expectedErr: ErrEmptyURL},
		{name: "No scheme", inputURL: "example.com", expectedErr: ErrInvalidURL},
		{name: "Unsupported scheme", inputURL: "ftp://example.com", expectedErr: ErrInvalidURL},
		{name: "No host", inputURL: "https://", expectedErr: ErrInvalidURL},
		{name: "Malformed", inputURL: "http://[::1", expectedErr: ErrInvalidURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			usecase, _, _, _ := newTestUsecase(t)

			// Act
			result, err := usecase.CreateShortURLFromString(context.Background(), tt.inputURL, "")

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Empty(t, result)
		})
	}
}

func TestCreateShortURLFromString_AlreadyExists(t *testing.T) {
	// Arrange
	usecase, _, mockService, _ := newTestUsecase(t)

	mockService.EXPECT().
		CreateShortURL(mock.Anything, model.URL("https://example.com"), "").
		Return(model.Code("existing"), false, nil).
		Once()

	// Act
	result, err := usecase.CreateShortURLFromString(context.Background(), "https://example.com", "")

	// Assert
	require.Error(t, err)
	assert.Empty(t, result)

	var existsErr URLAlreadyExistsError
	require.ErrorAs(t, err, &existsErr)
	assert.Equal(t, "http://localhost:8080/existing", existsErr.ExistingURL())
}

func TestCreateShortURLFromString_ServiceError(t *testing.T) {
	// Arrange
	usecase, _, mockService, _ := newTestUsecase(t)
	serviceErr := errors.New("storage is down")

	mockService.EXPECT().
		CreateShortURL(mock.Anything, model.URL("https://example.com"), "").
		Return(model.Code(""), false, serviceErr).
		Once()

	// Act
	_, err := usecase.CreateShortURLFromString(context.Background(), "https://example.com", "")

	// Assert
	assert.ErrorIs(t, err, ErrServiceUnavailable)
	assert.ErrorIs(t, err, serviceErr)
}

func TestCreateShortURLsBatch(t *testing.T) {
	t.Run("maps codes to short URLs by index", func(t *testing.T) {
		// Arrange
		usecase, _, mockService, _ := newTestUsecase(t)

		mockService.EXPECT().
			CreateShortURLsBatch(mock.Anything, []model.URL{"https://a.example", "https://b.example"}, "user-1").
			Return([]model.Code{"aaaaaaaa", "bbbbbbbb"}, nil).
			Once()

		// Act
		result, err := usecase.CreateShortURLsBatch(context.Background(), []string{"https://a.example", " https://b.example "}, "user-1")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, []string{"http://localhost:8080/aaaaaaaa", "http://localhost:8080/bbbbbbbb"}, result)
	})

	t.Run("invalid URL rejects the whole batch", func(t *testing.T) {
		// Arrange
		usecase, _, _, _ := newTestUsecase(t)

		// Act
		result, err := usecase.CreateShortURLsBatch(context.Background(), []string{"https://a.example", "not a url"}, "")

		// Assert
		assert.ErrorIs(t, err, ErrInvalidURL)
		assert.ErrorContains(t, err, "index 1")
		assert.Nil(t, result)
	})

	t.Run("service error", func(t *testing.T) {
		// Arrange
		usecase, _, mockService, _ := newTestUsecase(t)

		mockService.EXPECT().
			CreateShortURLsBatch(mock.Anything, mock.Anything, "").
			Return(nil, errors.New("boom")).
			Once()

		// Act
		_, err := usecase.CreateShortURLsBatch(context.Background(), []string{"https://a.example"}, "")

		// Assert
		assert.ErrorIs(t, err, ErrServiceUnavailable)
	})
}
