package application

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"resourcedex/internal/domain"
	"resourcedex/internal/ports"
)

// LoadDataset loads every record from src. Any failure is returned as a
// *DataLoadError. The failure is terminal: callers do not retry.
func LoadDataset(ctx context.Context, src ports.DatasetSource, logger *zap.Logger) ([]domain.Record, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if src == nil {
		return nil, &DataLoadError{Source: "<none>", Err: ErrNoDataset}
	}

	records, err := src.Load(ctx)
	if err != nil {
		var loadErr *DataLoadError
		if errors.As(err, &loadErr) {
			return nil, err
		}
		logger.Error("dataset load failed", zap.String("source", src.Describe()), zap.Error(err))
		return nil, &DataLoadError{Source: src.Describe(), Err: err}
	}

	logger.Info("dataset loaded", zap.String("source", src.Describe()), zap.Int("records", len(records)))
	return records, nil
}
