package segments

import (
	"errors"
	"fmt"
	"slices"

	"net-profiler/internal/filters"
	"net-profiler/internal/models"
)

var (
	ErrUnknownToken   = errors.New("unknown token variant")
	ErrInvalidChannel = errors.New("invalid bunch channel")
)

// UnsetTime is the StartTime of a segment that has not seen a frame marker.
const UnsetTime = -1.0

// Counters are the absolute statistics of a segment. Times are in seconds unless suffixed Ms,
// sizes in bits unless noted; socket sizes are in bytes.
type Counters struct {
	StartTime float64
	EndTime   float64
	NumFrames int
	NumEvents int

	ActorCount           int
	ActorReplicateTimeMs float64
	PropertyCount        int
	ReplicatedSizeBits   int64

	RPCCount    int
	RPCSizeBits int64

	SendBunchCount              int
	SendBunchSizeBits           int64
	SendBunchCountPerChannel    [models.NumChannelKinds]int
	SendBunchSizeBitsPerChannel [models.NumChannelKinds]int64

	ExemptSocketCount int
	ExemptSocketSize  int64
	OtherSocketCount  int
	OtherSocketSize   int64
}

// StreamSegment summarizes an ordered token sequence. It is immutable once built: filtering and
// merging produce new segments recomputed from a derived token list, and may safely run
// concurrently over the same segment.
type StreamSegment struct {
	counters        Counters
	tokens          []models.Token
	exemptSocket    int
	firstFrameDelta float64
}

type propertyMatcher interface {
	MatchesProperty(property *models.ReplicateProperty) bool
}

// New builds a segment from tokens in one pass. Sends on exemptSocket are counted apart from all
// other socket sends; firstFrameDelta is added to the end time since the duration of a frame
// cannot be derived from frame markers alone.
func New(tokens []models.Token, exemptSocket int, firstFrameDelta float64) (*StreamSegment, error) {
	return build(slices.Clone(tokens), exemptSocket, firstFrameDelta, nil)
}

// Merge concatenates the tokens of consecutive segments and summarizes the result. Segments must be
// given in chronological order and must not overlap; this is not checked.
//
// Merge keeps no filter: every property of the retained actors is counted again. Merging filtered
// segments therefore drops their property filter; filter the merged segment instead when the
// property totals must honour it.
func Merge(streams []*StreamSegment, exemptSocket int, firstFrameDelta float64) (*StreamSegment, error) {
	total := 0
	for _, s := range streams {
		total += len(s.tokens)
	}
	tokens := make([]models.Token, 0, total)
	for _, s := range streams {
		tokens = append(tokens, s.tokens...)
	}
	return build(tokens, exemptSocket, firstFrameDelta, nil)
}

// SplitFrames partitions tokens into one segment per frame. A frame starts at its frame marker;
// tokens preceding the first marker form a frame of their own.
func SplitFrames(tokens []models.Token, exemptSocket int, firstFrameDelta float64) ([]*StreamSegment, error) {
	var frames []*StreamSegment
	start := 0
	flush := func(end int) error {
		if end == start {
			return nil
		}
		frame, err := build(slices.Clone(tokens[start:end]), exemptSocket, firstFrameDelta, nil)
		if err != nil {
			return err
		}
		frames = append(frames, frame)
		start = end
		return nil
	}

	for i, token := range tokens {
		if _, isMarker := token.(*models.FrameMarker); isMarker {
			if err := flush(i); err != nil {
				return nil, err
			}
		}
	}
	if err := flush(len(tokens)); err != nil {
		return nil, err
	}
	return frames, nil
}

// Filter returns a new segment holding only the tokens matching filter, with property totals
// restricted to matching properties. Identities are resolved through names.
func (s *StreamSegment) Filter(filter filters.IdentityFilter, names filters.NameResolver) (*StreamSegment, error) {
	matcher := filters.NewMatcher(filter, names)
	kept := make([]models.Token, 0, len(s.tokens))
	for _, token := range s.tokens {
		if matcher.MatchesFilters(token) {
			kept = append(kept, token)
		}
	}
	return build(kept, s.exemptSocket, s.firstFrameDelta, matcher)
}

func (s *StreamSegment) Counters() Counters {
	return s.counters
}

// Tokens returns a copy of the retained token list. The tokens themselves are shared and must not
// be modified.
func (s *StreamSegment) Tokens() []models.Token {
	return slices.Clone(s.tokens)
}

func (s *StreamSegment) Len() int {
	return len(s.tokens)
}

func (s *StreamSegment) ExemptSocket() int {
	return s.exemptSocket
}

func (s *StreamSegment) FirstFrameDelta() float64 {
	return s.firstFrameDelta
}

// HasSpan reports whether at least one frame marker set the time span.
func (s *StreamSegment) HasSpan() bool {
	return s.counters.NumFrames > 0
}

// Duration is the span of the segment in seconds.
func (s *StreamSegment) Duration() float64 {
	return s.counters.EndTime - s.counters.StartTime
}

func build(tokens []models.Token, exemptSocket int, firstFrameDelta float64, matcher propertyMatcher) (*StreamSegment, error) {
	counters, err := summarize(tokens, exemptSocket, firstFrameDelta, matcher)
	if err != nil {
		return nil, err
	}
	return &StreamSegment{
		counters:        counters,
		tokens:          tokens,
		exemptSocket:    exemptSocket,
		firstFrameDelta: firstFrameDelta,
	}, nil
}

func summarize(tokens []models.Token, exemptSocket int, firstFrameDelta float64, matcher propertyMatcher) (Counters, error) {
	c := Counters{StartTime: UnsetTime}

	for i, token := range tokens {
		switch t := token.(type) {
		case *models.FrameMarker:
			if c.NumFrames == 0 {
				c.StartTime = t.RelativeTime
			}
			c.EndTime = t.RelativeTime
			c.NumFrames++
		case *models.SocketSendTo:
			if t.SocketIdentity == exemptSocket {
				c.ExemptSocketCount++
				c.ExemptSocketSize += t.BytesSent
			} else {
				c.OtherSocketCount++
				c.OtherSocketSize += t.BytesSent
			}
		case *models.SendBunch:
			if !t.Channel.IsValid() {
				return Counters{}, fmt.Errorf("token at index %d: %w: %d", i, ErrInvalidChannel, t.Channel)
			}
			c.SendBunchCount++
			c.SendBunchSizeBits += t.NumBits
			c.SendBunchCountPerChannel[t.Channel]++
			c.SendBunchSizeBitsPerChannel[t.Channel] += t.NumBits
		case *models.SendRPC:
			c.RPCCount++
			c.RPCSizeBits += t.NumBits
		case *models.ReplicateActor:
			// Actor time counts even when every property is filtered out.
			c.ActorCount++
			c.ActorReplicateTimeMs += t.TimeMs
			for _, property := range t.Properties {
				if matcher == nil || matcher.MatchesProperty(property) {
					c.PropertyCount++
					c.ReplicatedSizeBits += property.NumBits
				}
			}
		case *models.Event:
			c.NumEvents++
		case *models.RawSocketData:
		default:
			return Counters{}, fmt.Errorf("token at index %d (%T): %w", i, token, ErrUnknownToken)
		}
	}

	c.EndTime += firstFrameDelta
	return c, nil
}
