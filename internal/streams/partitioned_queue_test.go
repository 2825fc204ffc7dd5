package streams

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionIndex_Stable(t *testing.T) {
	t.Parallel()

	for i := 0; i < 100; i++ {
		key := fmt.Sprintf("trace-%d", i)
		first := partitionIndex(key, defaultNumPartitions)
		assert.Equal(t, first, partitionIndex(key, defaultNumPartitions))
		assert.GreaterOrEqual(t, first, 0)
		assert.Less(t, first, defaultNumPartitions)
	}
}

func TestPartitionedQueue_SameKeyKeepsOrder(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueueWithSize[int](4, 16)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		require.NoError(t, queue.Publish(ctx, "trace-a", i))
	}

	lane := queue.Partition(partitionIndex("trace-a", 4))
	for i := 0; i < 10; i++ {
		assert.Equal(t, i, <-lane)
	}
}

func TestPartitionedQueue_PublishHonorsContextWhenFull(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueueWithSize[int](1, 1)
	require.NoError(t, queue.Publish(context.Background(), "k", 1))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := queue.Publish(ctx, "k", 2)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPartitionedQueue_Close(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueueWithSize[int](2, 1)
	queue.Close()

	for i := 0; i < queue.PartitionCount(); i++ {
		_, ok := <-queue.Partition(i)
		assert.False(t, ok)
	}
}
