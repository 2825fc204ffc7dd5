package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrUnknownTokenType = errors.New("unknown token type")
)

// WireToken is the JSON form of a decoded token.
//
// Example JSON:
//
//	{"type": "replicateActor", "actorIdentity": 1, "timeMs": 0.25,
//	 "properties": [{"propertyIdentity": 2, "numBits": 8, "numPotentialBits": 16, "flags": 1}]}
type WireToken struct {
	Type             string         `json:"type" validate:"required,oneof=frameMarker socketSendTo sendBunch sendRPC replicateActor event rawSocketData"`
	RelativeTime     float64        `json:"relativeTime,omitempty" validate:"gte=0"`
	SocketIdentity   int            `json:"socketIdentity,omitempty" validate:"gte=0"`
	BytesSent        int64          `json:"bytesSent,omitempty" validate:"gte=0"`
	Channel          uint8          `json:"channel,omitempty" validate:"lte=3"`
	NumBits          int64          `json:"numBits,omitempty" validate:"gte=0"`
	ActorIdentity    int            `json:"actorIdentity,omitempty" validate:"gte=0"`
	FunctionIdentity int            `json:"functionIdentity,omitempty" validate:"gte=0"`
	TimeMs           float64        `json:"timeMs,omitempty" validate:"gte=0"`
	Properties       []WireProperty `json:"properties,omitempty" validate:"dive"`
}

// WireProperty is the JSON form of a replicated property.
type WireProperty struct {
	PropertyIdentity int     `json:"propertyIdentity" validate:"gte=0"`
	NumBits          int64   `json:"numBits" validate:"gte=0"`
	NumPotentialBits int64   `json:"numPotentialBits" validate:"gte=0"`
	TimeMs           float64 `json:"timeMs,omitempty" validate:"gte=0"`
	Flags            uint8   `json:"flags,omitempty"`
}

// ToToken converts the wire form into its token variant.
func (w *WireToken) ToToken() (Token, error) {
	switch w.Type {
	case TokenFrameMarker.String():
		return &FrameMarker{RelativeTime: w.RelativeTime}, nil
	case TokenSocketSendTo.String():
		return &SocketSendTo{SocketIdentity: w.SocketIdentity, BytesSent: w.BytesSent}, nil
	case TokenSendBunch.String():
		return &SendBunch{Channel: ChannelKind(w.Channel), NumBits: w.NumBits}, nil
	case TokenSendRPC.String():
		return &SendRPC{ActorIdentity: w.ActorIdentity, FunctionIdentity: w.FunctionIdentity, NumBits: w.NumBits}, nil
	case TokenReplicateActor.String():
		actor := &ReplicateActor{
			ActorIdentity: w.ActorIdentity,
			TimeMs:        w.TimeMs,
			Properties:    make([]*ReplicateProperty, 0, len(w.Properties)),
		}
		for _, p := range w.Properties {
			actor.Properties = append(actor.Properties, &ReplicateProperty{
				PropertyIdentity: p.PropertyIdentity,
				NumBits:          p.NumBits,
				NumPotentialBits: p.NumPotentialBits,
				TimeMs:           p.TimeMs,
				Flags:            PropertyFlags(p.Flags),
			})
		}
		return actor, nil
	case TokenEvent.String():
		return &Event{}, nil
	case TokenRawSocketData.String():
		return &RawSocketData{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTokenType, w.Type)
	}
}

// NewWireToken converts a token variant into its wire form.
func NewWireToken(token Token) (WireToken, error) {
	switch t := token.(type) {
	case *FrameMarker:
		return WireToken{Type: t.Kind().String(), RelativeTime: t.RelativeTime}, nil
	case *SocketSendTo:
		return WireToken{Type: t.Kind().String(), SocketIdentity: t.SocketIdentity, BytesSent: t.BytesSent}, nil
	case *SendBunch:
		return WireToken{Type: t.Kind().String(), Channel: uint8(t.Channel), NumBits: t.NumBits}, nil
	case *SendRPC:
		return WireToken{Type: t.Kind().String(), ActorIdentity: t.ActorIdentity, FunctionIdentity: t.FunctionIdentity, NumBits: t.NumBits}, nil
	case *ReplicateActor:
		wire := WireToken{Type: t.Kind().String(), ActorIdentity: t.ActorIdentity, TimeMs: t.TimeMs}
		for _, p := range t.Properties {
			wire.Properties = append(wire.Properties, WireProperty{
				PropertyIdentity: p.PropertyIdentity,
				NumBits:          p.NumBits,
				NumPotentialBits: p.NumPotentialBits,
				TimeMs:           p.TimeMs,
				Flags:            uint8(p.Flags),
			})
		}
		return wire, nil
	case *Event:
		return WireToken{Type: t.Kind().String()}, nil
	case *RawSocketData:
		return WireToken{Type: t.Kind().String()}, nil
	default:
		return WireToken{}, fmt.Errorf("%w: %T", ErrUnknownTokenType, token)
	}
}

// TokenList is an ordered token sequence that serializes through WireToken.
type TokenList []Token

func (l TokenList) MarshalJSON() ([]byte, error) {
	wire := make([]WireToken, 0, len(l))
	for i, token := range l {
		w, err := NewWireToken(token)
		if err != nil {
			return nil, fmt.Errorf("token at index %d: %w", i, err)
		}
		wire = append(wire, w)
	}
	return json.Marshal(wire)
}

func (l *TokenList) UnmarshalJSON(data []byte) error {
	var wire []WireToken
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	tokens := make(TokenList, 0, len(wire))
	for i := range wire {
		token, err := wire[i].ToToken()
		if err != nil {
			return fmt.Errorf("token at index %d: %w", i, err)
		}
		tokens = append(tokens, token)
	}
	*l = tokens
	return nil
}
