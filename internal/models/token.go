package models

import "fmt"

// TokenKind identifies the variant of a decoded network trace token.
type TokenKind uint8

const (
	TokenFrameMarker TokenKind = iota
	TokenSocketSendTo
	TokenSendBunch
	TokenSendRPC
	TokenReplicateActor
	TokenReplicateProperty
	TokenEvent
	TokenRawSocketData
)

var tokenKindNames = [...]string{
	TokenFrameMarker:       "frameMarker",
	TokenSocketSendTo:      "socketSendTo",
	TokenSendBunch:         "sendBunch",
	TokenSendRPC:           "sendRPC",
	TokenReplicateActor:    "replicateActor",
	TokenReplicateProperty: "replicateProperty",
	TokenEvent:             "event",
	TokenRawSocketData:     "rawSocketData",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("tokenKind(%d)", uint8(k))
}

// Token is one decoded network trace event. The set of variants is closed:
// only the types declared in this file implement it.
type Token interface {
	Kind() TokenKind
	isToken()
}

// FrameMarker marks the start of a frame. RelativeTime is in seconds since the capture started.
type FrameMarker struct {
	RelativeTime float64
}

// SocketSendTo is a low level socket send.
type SocketSendTo struct {
	SocketIdentity int
	BytesSent      int64
}

// SendBunch is a bunch sent on a channel.
type SendBunch struct {
	Channel ChannelKind
	NumBits int64
}

// SendRPC is a remote function call sent on behalf of an actor.
type SendRPC struct {
	ActorIdentity    int
	FunctionIdentity int
	NumBits          int64
}

// ReplicateActor is one replication pass over an actor together with the properties it sent.
type ReplicateActor struct {
	ActorIdentity int
	TimeMs        float64
	Properties    []*ReplicateProperty
}

// ReplicateProperty is a single property replicated as part of a ReplicateActor.
type ReplicateProperty struct {
	PropertyIdentity int
	NumBits          int64
	NumPotentialBits int64
	TimeMs           float64
	Flags            PropertyFlags
}

// Event is a generic engine event. It is counted but not decomposed.
type Event struct{}

// RawSocketData is a raw payload dump. It is part of the stream but carries no counters.
type RawSocketData struct{}

func (*FrameMarker) Kind() TokenKind       { return TokenFrameMarker }
func (*SocketSendTo) Kind() TokenKind      { return TokenSocketSendTo }
func (*SendBunch) Kind() TokenKind         { return TokenSendBunch }
func (*SendRPC) Kind() TokenKind           { return TokenSendRPC }
func (*ReplicateActor) Kind() TokenKind    { return TokenReplicateActor }
func (*ReplicateProperty) Kind() TokenKind { return TokenReplicateProperty }
func (*Event) Kind() TokenKind             { return TokenEvent }
func (*RawSocketData) Kind() TokenKind     { return TokenRawSocketData }

func (*FrameMarker) isToken()       {}
func (*SocketSendTo) isToken()      {}
func (*SendBunch) isToken()         {}
func (*SendRPC) isToken()           {}
func (*ReplicateActor) isToken()    {}
func (*ReplicateProperty) isToken() {}
func (*Event) isToken()             {}
func (*RawSocketData) isToken()     {}

// PropertyFlags is the replication flag bitset recorded with a property.
type PropertyFlags uint8

const (
	PropertyFlagInitial PropertyFlags = 1 << iota
	PropertyFlagReliable
	PropertyFlagConditional
	PropertyFlagCustomDelta
)

var propertyFlagLetters = [...]struct {
	flag   PropertyFlags
	letter byte
}{
	{PropertyFlagInitial, 'I'},
	{PropertyFlagReliable, 'R'},
	{PropertyFlagConditional, 'C'},
	{PropertyFlagCustomDelta, 'D'},
}

// String renders one letter per known flag, '-' when unset (e.g. "I-C-").
func (f PropertyFlags) String() string {
	out := make([]byte, len(propertyFlagLetters))
	for i, l := range propertyFlagLetters {
		if f&l.flag != 0 {
			out[i] = l.letter
		} else {
			out[i] = '-'
		}
	}
	return string(out)
}
