package service

import (
	"context"
	"errors"

	"go_vocab_srs/internal/middleware"
	"go_vocab_srs/internal/model"
)

// withConflictRetry は fn が model.ErrConflict を返す間、最大 attempts 回まで実行します。
// 最後まで競合した場合は最後のエラーを返します。
func withConflictRetry(ctx context.Context, attempts int, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}
	var err error
	for i := 0; i < attempts; i++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		err = fn()
		if !errors.Is(err, model.ErrConflict) {
			return err
		}
		middleware.GetLogger(ctx).Debug("retrying after write conflict", "attempt", i+1, "max_attempts", attempts)
	}
	return err
}
