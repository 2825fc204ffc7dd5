package streams

import (
	"context"
	"hash/fnv"
)

const (
	defaultNumPartitions = 8
	defaultBuffer        = 1024
)

// PartitionedQueue is an in-process queue split into independent FIFO lanes. Messages with the same
// partition key always land in the same lane, so one consumer per lane sees them in publish order.
type PartitionedQueue[T any] struct {
	partitions []chan T
}

func NewPartitionedQueue[T any]() *PartitionedQueue[T] {
	return NewPartitionedQueueWithSize[T](defaultNumPartitions, defaultBuffer)
}

func NewPartitionedQueueWithSize[T any](numPartitions, buffer int) *PartitionedQueue[T] {
	channels := make([]chan T, numPartitions)
	for i := range channels {
		channels[i] = make(chan T, buffer)
	}
	return &PartitionedQueue[T]{partitions: channels}
}

func (queue *PartitionedQueue[T]) PartitionCount() int { return len(queue.partitions) }

// Partition exposes the receive side of one lane.
func (queue *PartitionedQueue[T]) Partition(index int) <-chan T {
	return queue.partitions[index]
}

// Publish enqueues msg on the lane of partitionKey, blocking while the lane is full.
func (queue *PartitionedQueue[T]) Publish(ctx context.Context, partitionKey string, msg T) error {
	idx := partitionIndex(partitionKey, len(queue.partitions))
	select {
	case queue.partitions[idx] <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close closes every lane. Publishing after Close panics.
func (queue *PartitionedQueue[T]) Close() {
	for _, ch := range queue.partitions {
		close(ch)
	}
}

func partitionIndex(key string, n int) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(key))
	return int(hash.Sum32() % uint32(n))
}
