package aggregators

import (
	"time"

	"net-profiler/internal/models"
)

const fixtureTraceID = "01ARZ3NDEKTSV4RRFFQ69G5FAV"

var fixtureSettings = Settings{ExemptSocketName: "Unreal", PacketOverheadBytes: 28}

// newFixtureTrace is a three frame trace:
//
//	frame 0: exempt socket send, PlayerPawn_C_0 replicating Health, ServerMove RPC
//	frame 1: PlayerPawn_C_1 replicating Ammo and Health, actor bunch, send on another socket
//	frame 2: frame marker only
func newFixtureTrace() *models.TraceCapture {
	return &models.TraceCapture{
		TraceID:             fixtureTraceID,
		UploadedAt:          time.Date(2026, 3, 2, 10, 15, 0, 0, time.UTC),
		Names:               []string{"Unreal", "PlayerPawn_C_0", "PlayerPawn_C_1", "Health", "ServerMove", "Ammo"},
		FirstFrameDeltaTime: 0.5,
		Tokens: models.TokenList{
			&models.FrameMarker{RelativeTime: 0},
			&models.SocketSendTo{SocketIdentity: 0, BytesSent: 100},
			&models.ReplicateActor{ActorIdentity: 1, TimeMs: 5, Properties: []*models.ReplicateProperty{
				{PropertyIdentity: 3, NumBits: 8, NumPotentialBits: 16, TimeMs: 1, Flags: models.PropertyFlagReliable},
			}},
			&models.SendRPC{ActorIdentity: 1, FunctionIdentity: 4, NumBits: 96},
			&models.FrameMarker{RelativeTime: 1},
			&models.ReplicateActor{ActorIdentity: 2, TimeMs: 3, Properties: []*models.ReplicateProperty{
				{PropertyIdentity: 5, NumBits: 16, NumPotentialBits: 16, TimeMs: 2},
				{PropertyIdentity: 3, NumBits: 8, NumPotentialBits: 8, TimeMs: 0.5, Flags: models.PropertyFlagReliable},
			}},
			&models.SendBunch{Channel: models.ChannelActor, NumBits: 64},
			&models.SocketSendTo{SocketIdentity: 9, BytesSent: 50},
			&models.FrameMarker{RelativeTime: 2},
		},
	}
}

func intPtr(v int) *int {
	return &v
}
