package rollups

import "slices"

// Accumulator folds one source item into the kind-specific statistics of its rollup record.
type Accumulator[T any, S any] interface {
	Accumulate(stats *S, item T)
}

// Record is the rollup of every item added under one key.
type Record[T any, S any] struct {
	Key   int
	Count int
	// FirstItem is the first item added under Key. It is kept for display metadata only and is
	// borrowed from the source token list.
	FirstItem T
	Stats     S
}

// UniqueItemTracker groups items by an integer identity key so that many instances sharing an
// identity (hundreds of projectiles of one class, say) collapse into a single record.
type UniqueItemTracker[T any, S any] struct {
	accumulator Accumulator[T, S]
	byKey       map[int]*Record[T, S]
	records     []*Record[T, S]
}

func NewUniqueItemTracker[T any, S any](accumulator Accumulator[T, S]) *UniqueItemTracker[T, S] {
	return &UniqueItemTracker[T, S]{
		accumulator: accumulator,
		byKey:       make(map[int]*Record[T, S]),
	}
}

// AddItem folds item into the record for key, creating the record on first sight.
func (t *UniqueItemTracker[T, S]) AddItem(key int, item T) {
	record, exists := t.byKey[key]
	if !exists {
		record = &Record[T, S]{Key: key}
		t.byKey[key] = record
		t.records = append(t.records, record)
	}
	if record.Count == 0 {
		record.FirstItem = item
	}
	record.Count++
	t.accumulator.Accumulate(&record.Stats, item)
}

func (t *UniqueItemTracker[T, S]) Get(key int) (*Record[T, S], bool) {
	record, ok := t.byKey[key]
	return record, ok
}

// Records returns the records in the order their keys were first seen.
func (t *UniqueItemTracker[T, S]) Records() []*Record[T, S] {
	return slices.Clone(t.records)
}

func (t *UniqueItemTracker[T, S]) Len() int {
	return len(t.records)
}
