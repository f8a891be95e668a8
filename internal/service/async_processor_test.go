package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsyncURLProcessor_ProcessesValidCodes(t *testing.T) {
	// Arrange
	processor := NewAsyncURLProcessor(3)
	codes := []model.Code{"a", "b", "c", "d", "e"}
	owned := map[model.Code]bool{"a": true, "c": true, "e": true}

	var validated atomic.Int32
	validator := func(_ context.Context, code model.Code) (bool, error) {
		validated.Add(1)
		return owned[code], nil
	}

	var processed []model.Code
	batch := func(_ context.Context, validCodes []model.Code) error {
		processed = validCodes
		return nil
	}

	// Act
	err := processor.ProcessURLsWithWorkers(context.Background(), codes, validator, batch)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int32(5), validated.Load())
	assert.ElementsMatch(t, []model.Code{"a", "c", "e"}, processed)
}

func TestAsyncURLProcessor_NoValidCodesSkipsProcessor(t *testing.T) {
	processor := NewAsyncURLProcessor(2)
	called := false

	err := processor.ProcessURLsWithWorkers(context.Background(), []model.Code{"a", "b"},
		func(context.Context, model.Code) (bool, error) { return false, nil },
		func(context.Context, []model.Code) error {
			called = true
			return nil
		},
	)

	require.NoError(t, err)
	assert.False(t, called)
}

func TestAsyncURLProcessor_CollectsErrors(t *testing.T) {
	processor := NewAsyncURLProcessor(0)
	validateErr := errors.New("lookup failed")
	processErr := errors.New("update failed")

	err := processor.ProcessURLsWithWorkers(context.Background(), []model.Code{"bad", "good"},
		func(_ context.Context, code model.Code) (bool, error) {
			if code == "bad" {
				return false, validateErr
			}
			return true, nil
		},
		func(_ context.Context, validCodes []model.Code) error {
			assert.Equal(t, []model.Code{"good"}, validCodes)
			return processErr
		},
	)

	assert.ErrorIs(t, err, validateErr)
	assert.ErrorIs(t, err, processErr)
}

func TestAsyncURLProcessor_CanceledContext(t *testing.T) {
	processor := NewAsyncURLProcessor(2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := processor.ProcessURLsWithWorkers(ctx, []model.Code{"a", "b", "c"},
		func(context.Context, model.Code) (bool, error) { return true, nil },
		func(context.Context, []model.Code) error {
			t.Error("processor must not run after cancellation")
			return nil
		},
	)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestAsyncURLProcessor_EmptyInput(t *testing.T) {
	processor := NewAsyncURLProcessor(2)

	err := processor.ProcessURLsWithWorkers(context.Background(), nil, nil, nil)

	assert.NoError(t, err)
}
