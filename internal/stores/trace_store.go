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

	"github.com/klauspost/compress/zstd"
)

var (
	ErrTraceAlreadyExist = errors.New("trace already exists")
	ErrTraceNotFound     = errors.New("trace not found")
)

// TraceStore persists decoded traces as zstd compressed JSON blobs. Put is create-if-not-exists:
// two uploads racing on the same trace ID resolve to exactly one stored trace, the loser gets
// ErrTraceAlreadyExist.
//
//go:generate mockgen -source=trace_store.go -destination=./mocks/trace_store_mock.go -package=mocks
type TraceStore interface {
	Put(ctx context.Context, trace *models.TraceCapture) error
	Get(ctx context.Context, traceID string) (*models.TraceCapture, error)
	Delete(ctx context.Context, traceID string) error
}

type traceStore struct {
	fileStorage filestorages.FileStorage
	dir         string
	encoder     *zstd.Encoder
	decoder     *zstd.Decoder
}

func NewTraceStore(fileStorage filestorages.FileStorage) (TraceStore, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	return &traceStore{fileStorage: fileStorage, dir: "traces", encoder: encoder, decoder: decoder}, nil
}

func (s *traceStore) Put(ctx context.Context, trace *models.TraceCapture) error {
	jsonData, err := json.Marshal(trace)
	if err != nil {
		return fmt.Errorf("failed to marshal trace: %w", err)
	}
	compressed := s.encoder.EncodeAll(jsonData, make([]byte, 0, len(jsonData)/4))

	_, err = s.fileStorage.Put(ctx, s.getKey(trace.TraceID), bytes.NewReader(compressed), filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return ErrTraceAlreadyExist
		}
		return fmt.Errorf("failed to put trace: %w", err)
	}
	return nil
}

func (s *traceStore) Get(ctx context.Context, traceID string) (*models.TraceCapture, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.getKey(traceID))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrTraceNotFound
		}
		return nil, fmt.Errorf("failed to get trace: %w", err)
	}
	defer readCloser.Close()

	compressed, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read trace: %w", err)
	}
	jsonData, err := s.decoder.DecodeAll(compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress trace: %w", err)
	}

	var trace models.TraceCapture
	if err := json.Unmarshal(jsonData, &trace); err != nil {
		return nil, fmt.Errorf("failed to unmarshal trace: %w", err)
	}
	return &trace, nil
}

func (s *traceStore) Delete(ctx context.Context, traceID string) error {
	if err := s.fileStorage.Delete(ctx, s.getKey(traceID)); err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return ErrTraceNotFound
		}
		return fmt.Errorf("failed to delete trace: %w", err)
	}
	return nil
}

func (s *traceStore) getKey(traceID string) string {
	return fmt.Sprintf("%s/%s.json.zst", s.dir, traceID)
}
