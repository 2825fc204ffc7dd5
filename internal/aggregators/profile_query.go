package aggregators

import (
	"fmt"

	"net-profiler/internal/filters"
	"net-profiler/internal/models"
)

// ProfileQuery selects the part of a trace a profile is computed for. Frames are numbered by
// position in the trace, starting at 0; ToFrame is inclusive. Tokens preceding the first frame
// marker count as a frame of their own.
type ProfileQuery struct {
	Filter    filters.IdentityFilter
	FromFrame *int
	ToFrame   *int
}

func (q ProfileQuery) validate() error {
	if q.FromFrame != nil && *q.FromFrame < 0 {
		return fmt.Errorf("fromFrame must be >= 0, got %d", *q.FromFrame)
	}
	if q.ToFrame != nil && *q.ToFrame < 0 {
		return fmt.Errorf("toFrame must be >= 0, got %d", *q.ToFrame)
	}
	if q.FromFrame != nil && q.ToFrame != nil && *q.FromFrame > *q.ToFrame {
		return fmt.Errorf("fromFrame %d is after toFrame %d", *q.FromFrame, *q.ToFrame)
	}
	return nil
}

// HasFrameRange reports whether the query restricts frames.
func (q ProfileQuery) HasFrameRange() bool {
	return q.FromFrame != nil || q.ToFrame != nil
}

func (q ProfileQuery) toModel() *models.ProfileFilter {
	if q.Filter.IsMatchAll() && !q.HasFrameRange() {
		return nil
	}
	return &models.ProfileFilter{
		ActorPattern:    q.Filter.ActorPattern,
		PropertyPattern: q.Filter.PropertyPattern,
		RPCPattern:      q.Filter.RPCPattern,
		FromFrame:       q.FromFrame,
		ToFrame:         q.ToFrame,
	}
}
