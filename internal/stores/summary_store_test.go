package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"testing"

	"net-profiler/internal/models"
	"net-profiler/internal/shared/filestorages"
	"net-profiler/internal/shared/filestorages/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSummaryStore_Upsert_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewSummaryStore(mockFileStorage)

	ctx := context.Background()
	summary := &models.SegmentSummary{
		TraceID:    "trace-123",
		NumFrames:  2,
		ActorCount: 1,
		PerSecond:  models.SegmentRates{ActorCount: models.Rate(math.Inf(1))},
	}

	mockFileStorage.EXPECT().
		Put(ctx, "summaries/trace-123.json", gomock.Any(), filestorages.PutOptions{AllowOverwrite: true}).
		DoAndReturn(func(ctx context.Context, key string, r io.Reader, opts filestorages.PutOptions) (*filestorages.PutResult, error) {
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			var decoded map[string]any
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, "trace-123", decoded["traceId"])
			// Non-finite rates are persisted as null
			assert.Nil(t, decoded["perSecond"].(map[string]any)["actorCount"])
			return &filestorages.PutResult{FileKey: key}, nil
		})

	assert.NoError(t, store.Upsert(ctx, summary))
}

func TestSummaryStore_Upsert_PutError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewSummaryStore(mockFileStorage)

	mockFileStorage.EXPECT().
		Put(gomock.Any(), "summaries/trace-123.json", gomock.Any(), gomock.Any()).
		Return(nil, errors.New("storage error"))

	err := store.Upsert(context.Background(), &models.SegmentSummary{TraceID: "trace-123"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to put summary")
	assert.Contains(t, err.Error(), "storage error")
}

func TestSummaryStore_Get(t *testing.T) {
	t.Parallel()

	stored, err := json.Marshal(&models.SegmentSummary{TraceID: "trace-123", NumFrames: 7})
	require.NoError(t, err)

	tests := []struct {
		name        string
		getResult   io.ReadCloser
		getErr      error
		wantFrames  int
		wantErrIs   error
		errContains string
	}{
		{name: "found", getResult: io.NopCloser(bytes.NewReader(stored)), wantFrames: 7},
		{name: "not found", getErr: filestorages.ErrFileNotFound, wantErrIs: ErrSummaryNotFound},
		{name: "storage error", getErr: errors.New("io error"), errContains: "failed to get summary"},
		{name: "corrupt", getResult: io.NopCloser(bytes.NewReader([]byte("{"))), errContains: "failed to unmarshal summary"},
		{name: "read error", getResult: io.NopCloser(&errorReader{err: errors.New("read error")}), errContains: "failed to read summary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFileStorage := mocks.NewMockFileStorage(ctrl)
			store := NewSummaryStore(mockFileStorage)

			mockFileStorage.EXPECT().Get(gomock.Any(), "summaries/trace-123.json").Return(tt.getResult, tt.getErr)

			summary, err := store.Get(context.Background(), "trace-123")
			if tt.wantErrIs == nil && tt.errContains == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.wantFrames, summary.NumFrames)
				return
			}
			assert.Nil(t, summary)
			require.Error(t, err)
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
			}
			if tt.errContains != "" {
				assert.Contains(t, err.Error(), tt.errContains)
			}
		})
	}
}
