package service

import (
	"context"
	"errors"
	"sync"

	"github.com/avc-dev/shortlink/internal/model"
)

const defaultProcessorWorkers = 4

// URLValidator определяет функцию для валидации кода
type URLValidator func(ctx context.Context, code model.Code) (bool, error)

// URLBatchProcessor обрабатывает коды, прошедшие валидацию
type URLBatchProcessor func(ctx context.Context, validCodes []model.Code) error

// AsyncURLProcessor валидирует коды параллельно воркерами и сливает результаты по fanIn паттерну
type AsyncURLProcessor struct {
	workers int
}

// NewAsyncURLProcessor создает новый AsyncURLProcessor
func NewAsyncURLProcessor(workers int) *AsyncURLProcessor {
	if workers <= 0 {
		workers = defaultProcessorWorkers
	}
	return &AsyncURLProcessor{workers: workers}
}

// ProcessURLsWithWorkers валидирует коды и передает валидные в processor одним вызовом.
// Ошибки валидации не останавливают остальные коды и возвращаются вместе с ошибкой processor.
func (p *AsyncURLProcessor) ProcessURLsWithWorkers(
	ctx context.Context,
	codes []model.Code,
	validator URLValidator,
	processor URLBatchProcessor,
) error {
	if len(codes) == 0 {
		return nil
	}

	numWorkers := min(p.workers, len(codes))

	codesChan := make(chan model.Code)
	go func() {
		defer close(codesChan)
		for _, code := range codes {
			select {
			case codesChan <- code:
			case <-ctx.Done():
				return
			}
		}
	}()

	// Каждый воркер пишет в свой канал
	workerChannels := make([]chan model.Code, numWorkers)
	var (
		errMutex sync.Mutex
		errs     []error
	)
	for i := range workerChannels {
		output := make(chan model.Code, len(codes))
		workerChannels[i] = output

		go func() {
			defer close(output)
			for code := range codesChan {
				valid, err := validator(ctx, code)
				if err != nil {
					errMutex.Lock()
					errs = append(errs, err)
					errMutex.Unlock()
					continue
				}
				if valid {
					output <- code
				}
			}
		}()
	}

	// FanIn: сливаем результаты от всех воркеров
	var validCodes []model.Code
	for code := range fanIn(workerChannels...) {
		validCodes = append(validCodes, code)
	}

	if err := ctx.Err(); err != nil {
		errs = append(errs, err)
	} else if len(validCodes) > 0 {
		if err := processor(ctx, validCodes); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func fanIn(inputs ...chan model.Code) <-chan model.Code {
	out := make(chan model.Code)

	var wg sync.WaitGroup
	wg.Add(len(inputs))
	for _, input := range inputs {
		go func() {
			defer wg.Done()
			for code := range input {
				out <- code
			}
		}()
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}
