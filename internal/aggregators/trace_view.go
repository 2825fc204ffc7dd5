package aggregators

import (
	"net-profiler/internal/models"
	"net-profiler/internal/segments"
)

// noExemptSocket never matches a socket identity, so every send counts as "other".
const noExemptSocket = -1

// traceView binds a stored trace to its name table and the resolved exempt socket.
type traceView struct {
	trace        *models.TraceCapture
	names        *models.NameTable
	exemptSocket int
}

func newTraceView(trace *models.TraceCapture, exemptSocketName string) *traceView {
	names := models.NewNameTable(trace.Names)
	exemptSocket, ok := names.IndexOf(exemptSocketName)
	if !ok {
		exemptSocket = noExemptSocket
	}
	return &traceView{trace: trace, names: names, exemptSocket: exemptSocket}
}

// whole summarizes every token of the trace.
func (v *traceView) whole() (*segments.StreamSegment, error) {
	return segments.New(v.trace.Tokens, v.exemptSocket, v.trace.FirstFrameDeltaTime)
}

// segment applies the frame range of query and then its identity filter.
func (v *traceView) segment(query ProfileQuery) (*segments.StreamSegment, error) {
	base, err := v.frameRange(query)
	if err != nil {
		return nil, err
	}
	if query.Filter.IsMatchAll() {
		return base, nil
	}
	return base.Filter(query.Filter, v.names)
}

func (v *traceView) frameRange(query ProfileQuery) (*segments.StreamSegment, error) {
	if !query.HasFrameRange() {
		return v.whole()
	}

	frames, err := segments.SplitFrames(v.trace.Tokens, v.exemptSocket, v.trace.FirstFrameDeltaTime)
	if err != nil {
		return nil, err
	}
	from, to := 0, len(frames)
	if query.FromFrame != nil {
		from = min(*query.FromFrame, len(frames))
	}
	if query.ToFrame != nil && *query.ToFrame < len(frames) {
		to = *query.ToFrame + 1
	}
	return segments.Merge(frames[from:to], v.exemptSocket, v.trace.FirstFrameDeltaTime)
}

// actorClass keys actor replications by class so instances of one class share a rollup record.
// Identities outside the name table are left out.
func (v *traceView) actorClass(actor *models.ReplicateActor) (int, bool) {
	return v.names.ClassIndex(actor.ActorIdentity)
}
