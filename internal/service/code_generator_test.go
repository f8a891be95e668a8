package service

import (
	"strings"
	"sync"
	"testing"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeGenerator_GenerateCode(t *testing.T) {
	generator := NewCodeGenerator(CodeLength)

	seen := make(map[model.Code]bool)
	for i := 0; i < 1000; i++ {
		code := generator.GenerateCode()

		require.Len(t, code.String(), CodeLength)
		for _, char := range code.String() {
			require.True(t, strings.ContainsRune(AllowedChars, char), "unexpected char %q", char)
		}
		seen[code] = true
	}

	// 52^8 вариантов, совпадения на тысяче кодов практически исключены
	assert.Greater(t, len(seen), 990)
}

func TestCodeGenerator_Concurrent(t *testing.T) {
	generator := NewCodeGenerator(6)

	var wg sync.WaitGroup
	codes := make(chan model.Code, 400)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				codes <- generator.GenerateCode()
			}
		}()
	}
	wg.Wait()
	close(codes)

	for code := range codes {
		assert.Len(t, code.String(), 6)
	}
}

func TestShortUUIDGenerator_GenerateCode(t *testing.T) {
	generator := NewShortUUIDGenerator(10)

	first := generator.GenerateCode()
	second := generator.GenerateCode()

	assert.Len(t, first.String(), 10)
	assert.NotEqual(t, first, second)
}

func TestNewGenerator(t *testing.T) {
	tests := []struct {
		name     string
		strategy string
		length   int
		wantType Generator
		wantLen  int
		wantErr  error
	}{
		{name: "default strategy", strategy: "", length: 0, wantType: &CodeGenerator{}, wantLen: CodeLength},
		{name: "random", strategy: StrategyRandom, length: 12, wantType: &CodeGenerator{}, wantLen: 12},
		{name: "shortuuid", strategy: StrategyShortUUID, length: 8, wantType: &ShortUUIDGenerator{}, wantLen: 8},
		{name: "unknown", strategy: "sha256", length: 8, wantErr: ErrUnknownStrategy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			generator, err := NewGenerator(tt.strategy, tt.length)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, generator)
				return
			}

			require.NoError(t, err)
			assert.IsType(t, tt.wantType, generator)
			assert.Len(t, generator.GenerateCode().String(), tt.wantLen)
		})
	}
}
