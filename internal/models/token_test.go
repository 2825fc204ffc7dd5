package models

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyFlags_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "----", PropertyFlags(0).String())
	assert.Equal(t, "I-C-", (PropertyFlagInitial | PropertyFlagConditional).String())
	assert.Equal(t, "IRCD", (PropertyFlagInitial | PropertyFlagReliable | PropertyFlagConditional | PropertyFlagCustomDelta).String())
}

func TestKindStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "replicateActor", TokenReplicateActor.String())
	assert.Equal(t, "tokenKind(42)", TokenKind(42).String())
	assert.Equal(t, "Voice", ChannelVoice.String())
	assert.Equal(t, "ChannelKind(9)", ChannelKind(9).String())
	assert.True(t, ChannelFile.IsValid())
	assert.False(t, ChannelKind(4).IsValid())
}

func TestTokenList_JSON(t *testing.T) {
	t.Parallel()

	tokens := TokenList{
		&FrameMarker{RelativeTime: 0.5},
		&SocketSendTo{SocketIdentity: 2, BytesSent: 64},
		&SendBunch{Channel: ChannelControl, NumBits: 12},
		&SendRPC{ActorIdentity: 1, FunctionIdentity: 3, NumBits: 40},
		&ReplicateActor{ActorIdentity: 1, TimeMs: 0.75, Properties: []*ReplicateProperty{
			{PropertyIdentity: 4, NumBits: 8, NumPotentialBits: 16, TimeMs: 0.1, Flags: PropertyFlagReliable},
		}},
		&Event{},
		&RawSocketData{},
	}

	data, err := json.Marshal(tokens)
	require.NoError(t, err)

	var decoded TokenList
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, tokens, decoded)
}

func TestTokenList_Errors(t *testing.T) {
	t.Parallel()

	_, err := json.Marshal(TokenList{&ReplicateProperty{}})
	assert.True(t, errors.Is(err, ErrUnknownTokenType), err)

	var decoded TokenList
	err = json.Unmarshal([]byte(`[{"type": "frameMarker"}, {"type": "teleport"}]`), &decoded)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownTokenType))
	assert.Contains(t, err.Error(), "token at index 1")
}

func TestRate_JSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rate Rate
		want string
	}{
		{"finite", Rate(2.5), "2.5"},
		{"positive infinity", Rate(math.Inf(1)), "null"},
		{"not a number", Rate(math.NaN()), "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := json.Marshal(tt.rate)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}

	var r Rate
	require.NoError(t, json.Unmarshal([]byte("null"), &r))
	assert.False(t, r.IsFinite())
	require.NoError(t, json.Unmarshal([]byte("4"), &r))
	assert.Equal(t, Rate(4), r)
}
