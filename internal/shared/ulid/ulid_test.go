package ulid

import (
	"testing"
	"time"

	oklog "github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTraceID_EmbedsUploadTime(t *testing.T) {
	t.Parallel()

	uploadedAt := time.Date(2026, 3, 14, 15, 9, 26, 535_000_000, time.UTC)
	id := NewTraceID(uploadedAt)
	require.Len(t, id, 26)

	parsed, err := oklog.ParseStrict(id)
	require.NoError(t, err)
	assert.True(t, uploadedAt.Equal(oklog.Time(parsed.Time())))
}

func TestNewTraceID_SortsByUploadTime(t *testing.T) {
	t.Parallel()

	earlier := NewTraceID(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	later := NewTraceID(time.Date(2026, 1, 1, 0, 0, 1, 0, time.UTC))
	assert.Less(t, earlier, later)
}

func TestNewULID(t *testing.T) {
	t.Parallel()

	a, b := NewULID(), NewULID()
	assert.Len(t, a, 26)
	assert.NotEqual(t, a, b)
}
