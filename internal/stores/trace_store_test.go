package stores

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"net-profiler/internal/models"
	"net-profiler/internal/shared/filestorages"
	"net-profiler/internal/shared/filestorages/mocks"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestTrace() *models.TraceCapture {
	return &models.TraceCapture{
		TraceID:             "trace-123",
		UploadedAt:          time.Date(2026, 3, 2, 10, 15, 0, 0, time.UTC),
		Names:               []string{"Unreal", "PlayerPawn_C_0", "Health"},
		FirstFrameDeltaTime: 0.016,
		Tokens: models.TokenList{
			&models.FrameMarker{RelativeTime: 0},
			&models.SocketSendTo{SocketIdentity: 0, BytesSent: 512},
			&models.ReplicateActor{ActorIdentity: 1, TimeMs: 5, Properties: []*models.ReplicateProperty{
				{PropertyIdentity: 2, NumBits: 8, NumPotentialBits: 16, Flags: models.PropertyFlagReliable},
			}},
			&models.SendBunch{Channel: models.ChannelActor, NumBits: 64},
			&models.FrameMarker{RelativeTime: 1},
		},
	}
}

func TestTraceStore_Put_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store, err := NewTraceStore(mockFileStorage)
	require.NoError(t, err)

	ctx := context.Background()
	trace := newTestTrace()

	mockFileStorage.EXPECT().
		Put(ctx, "traces/trace-123.json.zst", gomock.Any(), filestorages.PutOptions{AllowOverwrite: false}).
		DoAndReturn(func(ctx context.Context, key string, r io.Reader, opts filestorages.PutOptions) (*filestorages.PutResult, error) {
			compressed, err := io.ReadAll(r)
			require.NoError(t, err)

			decoder, err := zstd.NewReader(nil)
			require.NoError(t, err)
			defer decoder.Close()
			data, err := decoder.DecodeAll(compressed, nil)
			require.NoError(t, err)
			assert.Contains(t, string(data), `"traceId":"trace-123"`)
			assert.Contains(t, string(data), `"type":"replicateActor"`)
			return &filestorages.PutResult{FileKey: key}, nil
		})

	assert.NoError(t, store.Put(ctx, trace))
}

func TestTraceStore_Put_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		putErr      error
		wantErrIs   error
		errContains string
	}{
		{name: "already exists", putErr: filestorages.ErrFileAlreadyExists, wantErrIs: ErrTraceAlreadyExist},
		{name: "storage failure", putErr: errors.New("disk full"), errContains: "failed to put trace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFileStorage := mocks.NewMockFileStorage(ctrl)
			store, err := NewTraceStore(mockFileStorage)
			require.NoError(t, err)

			mockFileStorage.EXPECT().
				Put(gomock.Any(), "traces/trace-123.json.zst", gomock.Any(), gomock.Any()).
				Return(nil, tt.putErr)

			err = store.Put(context.Background(), newTestTrace())
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

func TestTraceStore_Get_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		setup       func(m *mocks.MockFileStorage)
		wantErrIs   error
		errContains string
	}{
		{
			name: "not found",
			setup: func(m *mocks.MockFileStorage) {
				m.EXPECT().Get(gomock.Any(), "traces/trace-123.json.zst").Return(nil, filestorages.ErrFileNotFound)
			},
			wantErrIs: ErrTraceNotFound,
		},
		{
			name: "storage failure",
			setup: func(m *mocks.MockFileStorage) {
				m.EXPECT().Get(gomock.Any(), "traces/trace-123.json.zst").Return(nil, errors.New("io error"))
			},
			errContains: "failed to get trace",
		},
		{
			name: "not zstd",
			setup: func(m *mocks.MockFileStorage) {
				m.EXPECT().Get(gomock.Any(), "traces/trace-123.json.zst").Return(io.NopCloser(bytes.NewReader([]byte(`{"plain":"json"}`))), nil)
			},
			errContains: "failed to decompress trace",
		},
		{
			name: "read failure",
			setup: func(m *mocks.MockFileStorage) {
				m.EXPECT().Get(gomock.Any(), "traces/trace-123.json.zst").Return(io.NopCloser(&errorReader{err: errors.New("read error")}), nil)
			},
			errContains: "failed to read trace",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFileStorage := mocks.NewMockFileStorage(ctrl)
			tt.setup(mockFileStorage)
			store, err := NewTraceStore(mockFileStorage)
			require.NoError(t, err)

			trace, err := store.Get(context.Background(), "trace-123")
			assert.Nil(t, trace)
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

func TestTraceStore_RoundTrip(t *testing.T) {
	t.Parallel()

	fileStorage, err := filestorages.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	store, err := NewTraceStore(fileStorage)
	require.NoError(t, err)

	ctx := context.Background()
	trace := newTestTrace()
	require.NoError(t, store.Put(ctx, trace))

	got, err := store.Get(ctx, trace.TraceID)
	require.NoError(t, err)
	assert.Equal(t, trace, got)

	assert.ErrorIs(t, store.Put(ctx, trace), ErrTraceAlreadyExist)

	require.NoError(t, store.Delete(ctx, trace.TraceID))
	_, err = store.Get(ctx, trace.TraceID)
	assert.ErrorIs(t, err, ErrTraceNotFound)
	assert.ErrorIs(t, store.Delete(ctx, trace.TraceID), ErrTraceNotFound)
}

type errorReader struct {
	err error
}

func (r *errorReader) Read(p []byte) (n int, err error) {
	return 0, r.err
}
