package usecase

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/worker"
	"github.com/thoas/go-funk"
	"go.uber.org/zap"
)

const deleteJobName = "delete_urls"

// DeleteURLs ставит в очередь удаление URL пользователя.
// Принадлежность проверяется воркерами, чужие и неизвестные коды пропускаются.
func (u *URLUsecase) DeleteURLs(ctx context.Context, codes []string, userID string) error {
	unique := funk.UniqString(codes)
	modelCodes := make([]model.Code, 0, len(unique))
	for _, code := range unique {
		if code != "" {
			modelCodes = append(modelCodes, model.Code(code))
		}
	}

	if len(modelCodes) == 0 {
		return nil
	}

	job := worker.NewJob(deleteJobName, func(ctx context.Context) error {
		return u.deleteURLs(ctx, modelCodes, userID)
	})

	if err := u.jobs.Add(ctx, job); err != nil {
		u.logger.Error("failed to enqueue URL deletion",
			zap.String("user_id", userID),
			zap.Int("codes_count", len(modelCodes)),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	return nil
}

// deleteURLs проверяет принадлежность кодов воркерами и удаляет валидные одним батчем
func (u *URLUsecase) deleteURLs(ctx context.Context, codes []model.Code, userID string) error {
	validator := func(ctx context.Context, code model.Code) (bool, error) {
		return u.repo.IsURLOwnedByUser(ctx, code, userID)
	}

	processor := func(ctx context.Context, validCodes []model.Code) error {
		if err := u.repo.DeleteURLsBatch(ctx, validCodes, userID); err != nil {
			return err
		}

		u.logger.Info("deleted URLs batch",
			zap.String("user_id", userID),
			zap.Int("requested", len(codes)),
			zap.Int("deleted", len(validCodes)),
		)
		return nil
	}

	return u.asyncProcessor.ProcessURLsWithWorkers(ctx, codes, validator, processor)
}
