package rollups

import (
	"cmp"
	"slices"

	"net-profiler/internal/filters"
	"net-profiler/internal/models"
)

// KeyFunc maps an actor replication to its rollup key. Returning false leaves the actor out of the
// rollup, which is how stale identities are handled.
type KeyFunc func(actor *models.ReplicateActor) (int, bool)

// ByActorIdentity keys actors by their own identity.
func ByActorIdentity(actor *models.ReplicateActor) (int, bool) {
	return actor.ActorIdentity, true
}

// PerformanceRollup is the two-level actor → property cost breakdown of a segment, both levels
// sorted by descending replication time.
type PerformanceRollup struct {
	Actors []ActorPerformance `json:"actors"`
}

type ActorPerformance struct {
	Key               int                   `json:"key"`
	Name              string                `json:"name,omitempty"`
	Count             int                   `json:"count"`
	TimeMs            float64               `json:"timeMs"`
	SizeBits          int64                 `json:"sizeBits"`
	PotentialSizeBits int64                 `json:"potentialSizeBits"`
	Properties        []PropertyPerformance `json:"properties"`
}

type PropertyPerformance struct {
	PropertyIdentity  int     `json:"propertyIdentity"`
	Name              string  `json:"name,omitempty"`
	Flags             string  `json:"flags"`
	Count             int     `json:"count"`
	TimeMs            float64 `json:"timeMs"`
	SizeBits          int64   `json:"sizeBits"`
	PotentialSizeBits int64   `json:"potentialSizeBits"`
}

// BuildPerformanceRollup folds every actor replication in tokens into per-key records. Property
// filters do not apply here: every actor occurrence and all of its properties contribute.
func BuildPerformanceRollup(tokens []models.Token, keyOf KeyFunc) *PerformanceRollup {
	if keyOf == nil {
		keyOf = ByActorIdentity
	}

	actors := NewActorTracker()
	for _, token := range tokens {
		actor, ok := token.(*models.ReplicateActor)
		if !ok {
			continue
		}
		key, ok := keyOf(actor)
		if !ok {
			continue
		}
		actors.AddItem(key, actor)
	}

	actorRecords := sortedByTime(actors.Records(), func(r *Record[*models.ReplicateActor, ActorStats]) float64 {
		return r.Stats.TimeMs
	})

	rollup := &PerformanceRollup{Actors: make([]ActorPerformance, 0, len(actorRecords))}
	for _, actorRecord := range actorRecords {
		actor := ActorPerformance{
			Key:               actorRecord.Key,
			Count:             actorRecord.Count,
			TimeMs:            actorRecord.Stats.TimeMs,
			SizeBits:          actorRecord.Stats.SizeBits,
			PotentialSizeBits: actorRecord.Stats.PotentialSizeBits,
			Properties:        []PropertyPerformance{},
		}

		if actorRecord.Stats.Properties != nil {
			propertyRecords := sortedByTime(actorRecord.Stats.Properties.Records(), func(r *Record[*models.ReplicateProperty, PropertyStats]) float64 {
				return r.Stats.TimeMs
			})
			for _, propertyRecord := range propertyRecords {
				actor.Properties = append(actor.Properties, PropertyPerformance{
					PropertyIdentity:  propertyRecord.Key,
					Flags:             propertyRecord.FirstItem.Flags.String(),
					Count:             propertyRecord.Count,
					TimeMs:            propertyRecord.Stats.TimeMs,
					SizeBits:          propertyRecord.Stats.SizeBits,
					PotentialSizeBits: propertyRecord.Stats.PotentialSizeBits,
				})
			}
		}
		rollup.Actors = append(rollup.Actors, actor)
	}
	return rollup
}

// WithNames returns a copy of the rollup with display names resolved. Unknown identities keep an
// empty name.
func (r *PerformanceRollup) WithNames(names filters.NameResolver) *PerformanceRollup {
	named := &PerformanceRollup{Actors: make([]ActorPerformance, len(r.Actors))}
	for i, actor := range r.Actors {
		actor.Name, _ = names.Name(actor.Key)
		actor.Properties = slices.Clone(actor.Properties)
		for j := range actor.Properties {
			actor.Properties[j].Name, _ = names.Name(actor.Properties[j].PropertyIdentity)
		}
		named.Actors[i] = actor
	}
	return named
}

// sortedByTime sorts records by descending time, keeping first-seen order on ties.
func sortedByTime[R any](records []R, timeOf func(R) float64) []R {
	slices.SortStableFunc(records, func(a, b R) int {
		return cmp.Compare(timeOf(b), timeOf(a))
	})
	return records
}
