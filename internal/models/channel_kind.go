package models

import "fmt"

// ChannelKind buckets bunch sends by channel purpose.
type ChannelKind uint8

const (
	ChannelControl ChannelKind = iota
	ChannelActor
	ChannelFile
	ChannelVoice
)

// NumChannelKinds is the size of every per-channel counter array.
const NumChannelKinds = 4

// ChannelKinds lists every channel kind in index order.
var ChannelKinds = [NumChannelKinds]ChannelKind{ChannelControl, ChannelActor, ChannelFile, ChannelVoice}

func (c ChannelKind) IsValid() bool {
	return c < NumChannelKinds
}

func (c ChannelKind) String() string {
	switch c {
	case ChannelControl:
		return "Control"
	case ChannelActor:
		return "Actor"
	case ChannelFile:
		return "File"
	case ChannelVoice:
		return "Voice"
	default:
		return fmt.Sprintf("ChannelKind(%d)", uint8(c))
	}
}
