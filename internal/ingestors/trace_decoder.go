package ingestors

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"net-profiler/internal/models"
	"net-profiler/internal/shared/validators"
)

const (
	FormatJSON = "json"

	DefaultMaxUploadBytes = 64 * 1024 * 1024
)

// TraceDecoder turns an upload body into a trace capture. The returned capture has no trace ID
// or upload time yet.
//
//go:generate mockgen -source=trace_decoder.go -destination=./mocks/trace_decoder_mock.go -package=mocks
type TraceDecoder interface {
	Decode(format string, r io.Reader) (*models.TraceCapture, error)
}

type traceDecoder struct {
	maxBytes int64
	validate *validators.Validate
}

// NewTraceDecoder creates a decoder rejecting bodies larger than maxBytes.
// A non-positive maxBytes falls back to DefaultMaxUploadBytes.
func NewTraceDecoder(maxBytes int64) TraceDecoder {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	return &traceDecoder{
		maxBytes: maxBytes,
		validate: validators.New(),
	}
}

func (d *traceDecoder) Decode(format string, r io.Reader) (*models.TraceCapture, error) {
	if r == nil {
		return nil, errValidationFailed("empty request body", nil)
	}
	if !strings.Contains(strings.ToLower(format), FormatJSON) {
		return nil, errValidationFailed(fmt.Sprintf("unsupported input format: %q", format), nil)
	}

	buf, err := io.ReadAll(io.LimitReader(r, d.maxBytes+1))
	if err != nil {
		return nil, errValidationFailed("failed to read request body", err)
	}
	if int64(len(buf)) > d.maxBytes {
		return nil, errValidationFailed(fmt.Sprintf("trace too large: must be <= %d bytes", d.maxBytes), nil)
	}
	if len(bytes.TrimSpace(buf)) == 0 {
		return nil, errValidationFailed("empty request body", nil)
	}
	metricUploadBytes.WithLabelValues().Observe(float64(len(buf)))

	var upload models.TraceUpload
	if err := json.Unmarshal(buf, &upload); err != nil {
		return nil, errValidationFailed("invalid json", err)
	}
	if err := d.validate.Struct(&upload); err != nil {
		return nil, errValidationFailed(validators.Describe(err), err)
	}

	tokens := make(models.TokenList, 0, len(upload.Tokens))
	lastMarkerTime := 0.0
	for i := range upload.Tokens {
		token, err := upload.Tokens[i].ToToken()
		if err != nil {
			return nil, errValidationFailed(fmt.Sprintf("token at index %d: %s", i, err), err)
		}
		if err := checkIdentities(token, len(upload.Names)); err != nil {
			return nil, errValidationFailed(fmt.Sprintf("token at index %d: %s", i, err), err)
		}
		// segment end time must never precede its start time
		if marker, ok := token.(*models.FrameMarker); ok {
			if marker.RelativeTime < lastMarkerTime {
				return nil, errValidationFailed(fmt.Sprintf("token at index %d: frame marker relativeTime %g precedes previous marker %g",
					i, marker.RelativeTime, lastMarkerTime), nil)
			}
			lastMarkerTime = marker.RelativeTime
		}
		tokens = append(tokens, token)
	}

	return &models.TraceCapture{
		Names:               upload.Names,
		FirstFrameDeltaTime: upload.FirstFrameDeltaTime,
		Tokens:              tokens,
	}, nil
}

// checkIdentities rejects identity indices outside the uploaded name table.
func checkIdentities(token models.Token, nameCount int) error {
	check := func(field string, identity int) error {
		if identity >= nameCount {
			return fmt.Errorf("%s %d out of range: name table has %d entries", field, identity, nameCount)
		}
		return nil
	}

	switch t := token.(type) {
	case *models.SocketSendTo:
		return check("socketIdentity", t.SocketIdentity)
	case *models.SendRPC:
		if err := check("actorIdentity", t.ActorIdentity); err != nil {
			return err
		}
		return check("functionIdentity", t.FunctionIdentity)
	case *models.ReplicateActor:
		if err := check("actorIdentity", t.ActorIdentity); err != nil {
			return err
		}
		for _, p := range t.Properties {
			if err := check("propertyIdentity", p.PropertyIdentity); err != nil {
				return err
			}
		}
	}
	return nil
}
