package events

import "time"

// TraceIngestedEvent announces a trace that was stored and registered in the catalog. It is consumed
// by the summary aggregator, which computes the whole-trace summary in the background.
//
// Example JSON:
//
//	{
//	  "traceId": "01ARZ3NDEKTSV4RRFFQ69G5FAV",
//	  "uploadedAt": "2026-03-02T10:15:00Z",
//	  "tokenCount": 18230,
//	  "nameCount": 412
//	}
type TraceIngestedEvent struct {
	TraceID    string    `json:"traceId"`
	UploadedAt time.Time `json:"uploadedAt"`
	TokenCount int       `json:"tokenCount"`
	NameCount  int       `json:"nameCount"`
}

// PartitionKey routes every event of one trace to the same worker.
func (e *TraceIngestedEvent) PartitionKey() string {
	return e.TraceID
}
