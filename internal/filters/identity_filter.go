package filters

import (
	"strings"

	"net-profiler/internal/models"

	"golang.org/x/text/cases"
)

// NameResolver resolves identity indices to display strings. Lookups of unknown indices return false.
type NameResolver interface {
	Name(index int) (string, bool)
}

// IdentityFilter is a triple of case-insensitive substring patterns. An empty pattern matches everything.
type IdentityFilter struct {
	ActorPattern    string
	PropertyPattern string
	RPCPattern      string
}

// IsMatchAll reports whether the filter lets every token through.
func (f IdentityFilter) IsMatchAll() bool {
	return f.ActorPattern == "" && f.PropertyPattern == "" && f.RPCPattern == ""
}

// Matcher evaluates an IdentityFilter against tokens of one trace.
//
// A Matcher memoizes results per identity index and is not safe for concurrent use.
type Matcher struct {
	names    NameResolver
	caser    cases.Caser
	actor    *pattern
	property *pattern
	rpc      *pattern
}

type pattern struct {
	folded  string
	results map[int]bool
}

// NewMatcher creates a matcher resolving identities through names.
func NewMatcher(filter IdentityFilter, names NameResolver) *Matcher {
	m := &Matcher{
		names: names,
		caser: cases.Fold(),
	}
	m.actor = m.newPattern(filter.ActorPattern)
	m.property = m.newPattern(filter.PropertyPattern)
	m.rpc = m.newPattern(filter.RPCPattern)
	return m
}

func (m *Matcher) newPattern(raw string) *pattern {
	if raw == "" {
		return nil
	}
	return &pattern{folded: m.caser.String(raw), results: make(map[int]bool)}
}

// MatchesFilters reports whether token survives the filter. Only actor, property and RPC tokens are
// ever excluded; every other variant always matches.
func (m *Matcher) MatchesFilters(token models.Token) bool {
	switch t := token.(type) {
	case *models.ReplicateActor:
		return m.matches(m.actor, t.ActorIdentity)
	case *models.ReplicateProperty:
		return m.matches(m.property, t.PropertyIdentity)
	case *models.SendRPC:
		return m.matches(m.rpc, t.FunctionIdentity)
	default:
		return true
	}
}

// MatchesProperty reports whether a property nested in an actor counts toward property totals.
func (m *Matcher) MatchesProperty(property *models.ReplicateProperty) bool {
	return m.matches(m.property, property.PropertyIdentity)
}

func (m *Matcher) matches(p *pattern, identity int) bool {
	if p == nil {
		return true
	}
	if result, cached := p.results[identity]; cached {
		return result
	}

	result := false
	if m.names != nil {
		if name, ok := m.names.Name(identity); ok {
			result = strings.Contains(m.caser.String(name), p.folded)
		}
	}
	p.results[identity] = result
	return result
}
