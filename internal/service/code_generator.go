package service

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/lithammer/shortuuid/v4"
)

const (
	CodeLength   = 8
	AllowedChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

	StrategyRandom    = "random"
	StrategyShortUUID = "shortuuid"
)

// Generator выдает кандидатов в короткие коды. Уникальность проверяет URLService.
type Generator interface {
	GenerateCode() model.Code
}

// NewGenerator создает генератор по имени стратегии
func NewGenerator(strategy string, length int) (Generator, error) {
	if length <= 0 {
		length = CodeLength
	}

	switch strategy {
	case "", StrategyRandom:
		return NewCodeGenerator(length), nil
	case StrategyShortUUID:
		return NewShortUUIDGenerator(length), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
}

// CodeGenerator реализует генератор кодов с использованием вероятностного подхода
type CodeGenerator struct {
	length int
	mutex  sync.Mutex
	random *rand.Rand
}

// NewCodeGenerator создает новый генератор кодов
func NewCodeGenerator(length int) *CodeGenerator {
	return &CodeGenerator{
		length: length,
		random: rand.New(rand.NewSource(rand.Int63())),
	}
}

// GenerateCode генерирует случайный код из AllowedChars
func (g *CodeGenerator) GenerateCode() model.Code {
	result := make([]byte, g.length)

	// rand.Rand не потокобезопасен
	g.mutex.Lock()
	for i := range result {
		result[i] = AllowedChars[g.random.Intn(len(AllowedChars))]
	}
	g.mutex.Unlock()

	return model.Code(result)
}

// ShortUUIDGenerator строит коды из base57 представления UUIDv4
type ShortUUIDGenerator struct {
	length int
}

func NewShortUUIDGenerator(length int) *ShortUUIDGenerator {
	return &ShortUUIDGenerator{length: length}
}

func (g *ShortUUIDGenerator) GenerateCode() model.Code {
	id := shortuuid.New()
	if len(id) > g.length {
		id = id[:g.length]
	}
	return model.Code(id)
}
