package rollups

import "net-profiler/internal/models"

// PropertyStats accumulates every replication of one property identity.
type PropertyStats struct {
	TimeMs            float64
	SizeBits          int64
	PotentialSizeBits int64
}

// PropertyTracker rolls up properties keyed by property identity.
type PropertyTracker = UniqueItemTracker[*models.ReplicateProperty, PropertyStats]

type propertyAccumulator struct{}

func (propertyAccumulator) Accumulate(stats *PropertyStats, property *models.ReplicateProperty) {
	stats.TimeMs += property.TimeMs
	stats.SizeBits += property.NumBits
	stats.PotentialSizeBits += property.NumPotentialBits
}

func NewPropertyTracker() *PropertyTracker {
	return NewUniqueItemTracker[*models.ReplicateProperty, PropertyStats](propertyAccumulator{})
}

// ActorStats accumulates every replication of one actor key, with a nested rollup of the properties
// those replications sent.
type ActorStats struct {
	TimeMs            float64
	SizeBits          int64
	PotentialSizeBits int64
	Properties        *PropertyTracker
}

// ActorTracker rolls up actor replications.
type ActorTracker = UniqueItemTracker[*models.ReplicateActor, ActorStats]

type actorAccumulator struct{}

func (actorAccumulator) Accumulate(stats *ActorStats, actor *models.ReplicateActor) {
	if stats.Properties == nil {
		stats.Properties = NewPropertyTracker()
	}
	stats.TimeMs += actor.TimeMs
	for _, property := range actor.Properties {
		stats.SizeBits += property.NumBits
		stats.PotentialSizeBits += property.NumPotentialBits
		stats.Properties.AddItem(property.PropertyIdentity, property)
	}
}

func NewActorTracker() *ActorTracker {
	return NewUniqueItemTracker[*models.ReplicateActor, ActorStats](actorAccumulator{})
}
