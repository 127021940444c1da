package services

import (
	"context"

	"github.com/arslanameen227/Malik-MoneyFlow/internal/errs"
	"github.com/arslanameen227/Malik-MoneyFlow/pkg/logger"
)

// cachedOrEmpty downgrades a broken local store to an empty read. Offline
// first means a damaged cache must not take the whole session down; the
// remainder of the session simply runs from memory.
func cachedOrEmpty[T any](ctx context.Context, fetch func() ([]*T, error)) ([]*T, error) {
	records, err := fetch()
	if err == nil {
		return records, nil
	}
	if _, ok := err.(*errs.StorageUnavailableError); ok {
		logger.FromContext(ctx).Warn("local store unavailable, continuing with in-memory state", "error", err)
		return nil, nil
	}
	return nil, err
}
