package service

import (
	"fmt"

	"go_vocab_srs/internal/model"
	"go_vocab_srs/internal/srs"
)

// resolvePage は limit/offset を検証し、未指定の limit を既定値に、上限超えを maxLimit に丸めます。
func resolvePage(limit *int, offset, defaultLimit, maxLimit int) (int, int, error) {
	resolved := defaultLimit
	if limit != nil {
		resolved = *limit
	}
	if resolved < 0 {
		return 0, 0, model.NewAppError("INVALID_PAGINATION", "limitは0以上で指定してください。", "limit",
			fmt.Errorf("%w: %w", model.ErrInvalidInput, srs.ErrInvalidPagination))
	}
	if offset < 0 {
		return 0, 0, model.NewAppError("INVALID_PAGINATION", "offsetは0以上で指定してください。", "offset",
			fmt.Errorf("%w: %w", model.ErrInvalidInput, srs.ErrInvalidPagination))
	}
	if maxLimit > 0 && resolved > maxLimit {
		resolved = maxLimit
	}
	return resolved, offset, nil
}
