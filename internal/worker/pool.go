package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrAddJobTimeout = errors.New("failed to add new job in time")
	ErrPoolClosed    = errors.New("worker pool is closed")
)

const queueBufferMultiplier = 2

type PoolConfig struct {
	Concurrency   int
	DoJobTimeout  time.Duration
	AddJobTimeout time.Duration
}

type JobFunc func(context.Context) error

// Job единица фоновой работы с уникальным ID для логов
type Job struct {
	ID   string
	Name string
	do   JobFunc
}

func NewJob(name string, jobFunc JobFunc) Job {
	return Job{
		ID:   uuid.New().String(),
		Name: name,
		do:   jobFunc,
	}
}

// Do выполняет задачу в текущей горутине
func (job Job) Do(ctx context.Context) error {
	return job.do(ctx)
}

// Pool выполняет задачи фиксированным числом воркеров.
// Close перестает принимать задачи и дожидается выполнения уже поставленных.
type Pool struct {
	cfg    PoolConfig
	queue  chan Job
	logger *zap.Logger

	// closeMutex защищает queue от записи после закрытия
	closeMutex sync.RWMutex
	closed     bool
	wg         sync.WaitGroup
}

func NewPool(cfg PoolConfig, logger *zap.Logger) *Pool {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}

	pool := &Pool{
		cfg:    cfg,
		queue:  make(chan Job, cfg.Concurrency*queueBufferMultiplier),
		logger: logger,
	}

	pool.wg.Add(cfg.Concurrency)
	for i := 0; i < cfg.Concurrency; i++ {
		go pool.work()
	}

	return pool
}

// Add ставит задачу в очередь, ожидая свободного места не дольше AddJobTimeout
func (pool *Pool) Add(ctx context.Context, job Job) error {
	pool.closeMutex.RLock()
	defer pool.closeMutex.RUnlock()

	if pool.closed {
		return ErrPoolClosed
	}

	if pool.cfg.AddJobTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, pool.cfg.AddJobTimeout)
		defer cancel()
	}

	select {
	case pool.queue <- job:
		pool.logger.Debug("Enqueued job", zap.String("job", job.Name), zap.String("job_id", job.ID))
		return nil
	case <-ctx.Done():
		pool.logger.Warn("Failed to add job due to blocked queue", zap.String("job", job.Name), zap.String("job_id", job.ID))
		return ErrAddJobTimeout
	}
}

// Close закрывает очередь и ждет завершения воркеров или отмены ctx
func (pool *Pool) Close(ctx context.Context) error {
	pool.closeMutex.Lock()
	if !pool.closed {
		pool.closed = true
		close(pool.queue)
	}
	pool.closeMutex.Unlock()

	done := make(chan struct{})
	go func() {
		pool.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (pool *Pool) work() {
	defer pool.wg.Done()

	for job := range pool.queue {
		pool.run(job)
	}
}

func (pool *Pool) run(job Job) {
	// Задача не наследует контекст запроса, который ее поставил
	ctx := context.Background()
	if pool.cfg.DoJobTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, pool.cfg.DoJobTimeout)
		defer cancel()
	}

	start := time.Now()
	err := job.Do(ctx)
	fields := []zap.Field{
		zap.String("job", job.Name),
		zap.String("job_id", job.ID),
		zap.Duration("duration", time.Since(start)),
	}

	if err != nil {
		pool.logger.Error("Job failed", append(fields, zap.Error(err))...)
		return
	}
	pool.logger.Debug("Job succeeded", fields...)
}
