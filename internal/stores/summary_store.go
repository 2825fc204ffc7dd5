package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"net-profiler/internal/models"
	"net-profiler/internal/shared/filestorages"
)

var (
	ErrSummaryNotFound = errors.New("summary not found")
)

// SummaryStore keeps the latest whole-trace summary per trace. Upsert overwrites atomically, so a
// recomputed summary replaces the previous one without readers ever seeing a partial file.
//
//go:generate mockgen -source=summary_store.go -destination=./mocks/summary_store_mock.go -package=mocks
type SummaryStore interface {
	Upsert(ctx context.Context, summary *models.SegmentSummary) error
	Get(ctx context.Context, traceID string) (*models.SegmentSummary, error)
}

type summaryStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewSummaryStore(fileStorage filestorages.FileStorage) SummaryStore {
	return &summaryStore{fileStorage: fileStorage, dir: "summaries"}
}

func (s *summaryStore) Upsert(ctx context.Context, summary *models.SegmentSummary) error {
	jsonData, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	_, err = s.fileStorage.Put(ctx, s.getKey(summary.TraceID), bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: true})
	if err != nil {
		return fmt.Errorf("failed to put summary: %w", err)
	}
	return nil
}

func (s *summaryStore) Get(ctx context.Context, traceID string) (*models.SegmentSummary, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.getKey(traceID))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrSummaryNotFound
		}
		return nil, fmt.Errorf("failed to get summary: %w", err)
	}
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read summary: %w", err)
	}
	var summary models.SegmentSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal summary: %w", err)
	}
	return &summary, nil
}

func (s *summaryStore) getKey(traceID string) string {
	return fmt.Sprintf("%s/%s.json", s.dir, traceID)
}
