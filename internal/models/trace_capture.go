package models

import "time"

// TraceUpload is the request body of a trace upload: a trace already decoded from the binary capture
// format, together with the name table its identity indices refer to.
//
// Example JSON:
//
//	{
//	  "names": ["Unreal", "PlayerPawn_C_0", "Health", "ServerMove"],
//	  "firstFrameDeltaTime": 0.016,
//	  "tokens": [
//	    {"type": "frameMarker", "relativeTime": 0},
//	    {"type": "socketSendTo", "socketIdentity": 0, "bytesSent": 512},
//	    {"type": "replicateActor", "actorIdentity": 1, "timeMs": 5,
//	     "properties": [{"propertyIdentity": 2, "numBits": 8, "numPotentialBits": 8}]},
//	    {"type": "sendRPC", "actorIdentity": 1, "functionIdentity": 3, "numBits": 96},
//	    {"type": "frameMarker", "relativeTime": 0.033}
//	  ]
//	}
type TraceUpload struct {
	Names               []string    `json:"names" validate:"required,min=1"`
	FirstFrameDeltaTime float64     `json:"firstFrameDeltaTime" validate:"gte=0"`
	Tokens              []WireToken `json:"tokens" validate:"required,min=1,dive"`
}

// TraceCapture is a decoded trace as persisted by the trace store.
type TraceCapture struct {
	TraceID             string    `json:"traceId"`
	UploadedAt          time.Time `json:"uploadedAt"`
	Names               []string  `json:"names"`
	FirstFrameDeltaTime float64   `json:"firstFrameDeltaTime"`
	Tokens              TokenList `json:"tokens"`
}

// TraceCatalogEntry indexes an uploaded trace.
type TraceCatalogEntry struct {
	TraceID       string     `json:"traceId"`
	UploadedAt    time.Time  `json:"uploadedAt"`
	UploaderAgent string     `json:"uploaderAgent"`
	TokenCount    int        `json:"tokenCount"`
	NameCount     int        `json:"nameCount"`
	SummarizedAt  *time.Time `json:"summarizedAt,omitempty"`
}

// TraceIDRules validates trace IDs, which double as storage keys: ULIDs, plain alphanumeric
// idempotency keys, or UUIDs.
const TraceIDRules = "required,max=64,alphanum|uuid"
