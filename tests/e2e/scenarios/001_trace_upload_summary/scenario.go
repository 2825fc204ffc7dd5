package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic trace generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	totalTraces    = 200   // Number of unique traces to upload
	framesPerTrace = 120   // Frame markers per trace
	frameSeconds   = 0.033 // Relative time step between frame markers
	exemptBytes    = 512   // Bytes per exempt socket send
	otherBytes     = 64    // Bytes per other socket send
	propertyBits   = 24    // Bits per replicated property
	rpcBits        = 96    // Bits per RPC
)

var names = []string{"Unreal", "Beacon", "PlayerPawn_C_0", "Health", "ServerMove"}

// ### End - fixed configs

type wireProperty struct {
	PropertyIdentity int   `json:"propertyIdentity"`
	NumBits          int64 `json:"numBits"`
	NumPotentialBits int64 `json:"numPotentialBits"`
}

type wireToken struct {
	Type             string         `json:"type"`
	RelativeTime     float64        `json:"relativeTime,omitempty"`
	SocketIdentity   int            `json:"socketIdentity,omitempty"`
	BytesSent        int64          `json:"bytesSent,omitempty"`
	Channel          uint8          `json:"channel,omitempty"`
	NumBits          int64          `json:"numBits,omitempty"`
	ActorIdentity    int            `json:"actorIdentity,omitempty"`
	FunctionIdentity int            `json:"functionIdentity,omitempty"`
	TimeMs           float64        `json:"timeMs,omitempty"`
	Properties       []wireProperty `json:"properties,omitempty"`
}

type traceUpload struct {
	Names               []string    `json:"names"`
	FirstFrameDeltaTime float64     `json:"firstFrameDeltaTime"`
	Tokens              []wireToken `json:"tokens"`
}

type segmentSummary struct {
	TraceID           string `json:"traceId"`
	NumFrames         int    `json:"numFrames"`
	ActorCount        int    `json:"actorCount"`
	PropertyCount     int    `json:"propertyCount"`
	RPCCount          int    `json:"rpcCount"`
	ExemptSocketCount int    `json:"exemptSocketCount"`
	OtherSocketCount  int    `json:"otherSocketCount"`
}

type traceToSend struct {
	traceIndex int
	jsonData   []byte
	isOriginal bool
}

// main runs the e2e scenario: 001_trace_upload_summary
//
// This scenario uploads deterministic network traces to the profiler API, resends some of them
// with the same idempotency key, then waits for the background summaries.
//
// What it tests:
//   - Trace upload via POST /traces
//   - Idempotency key handling for duplicate uploads
//   - Trace ingested event production and consumption
//   - Whole-trace summary computation and storage
//   - Summary, report and performance endpoints over the same trace
//
// Expected results:
//   - Every original upload returns 202, every duplicate returns 409
//   - Every trace summary reports framesPerTrace frames and framesPerTrace actor replications
//   - Odd frames carry one exempt socket send, even frames one other socket send
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080"    // Base URL of the profiler API server
	parallel := 4                         // Number of concurrent upload requests
	totalDuplicates := 50                 // Duplicate uploads spread round-robin over the traces
	fileStorageDir := ".tmp/file-storage" // File storage directory path relative to project root
	wantCleanFileStorage := true          // If true, clean up file storage directory before running scenario
	summaryTimeout := 30 * time.Second    // How long to wait for background summaries

	projectRoot, err := findProjectRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	storagePath, err := filepath.Abs(filepath.Join(projectRoot, fileStorageDir))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to resolve file storage path: %v\n", err)
		os.Exit(1)
	}

	if wantCleanFileStorage {
		fmt.Printf("Cleaning file storage directory: %s\n", storagePath)
		if err := os.RemoveAll(storagePath); err != nil {
			fmt.Fprintf(os.Stderr, "WARNING: Failed to clean file storage directory: %v\n", err)
		}
		fmt.Println()
	}

	fmt.Println("Starting e2e scenario: 001_trace_upload_summary")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("TOTAL_TRACES: %d\n", totalTraces)
	fmt.Printf("FRAMES_PER_TRACE: %d\n", framesPerTrace)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Printf("TOTAL_DUPLICATES: %d\n", totalDuplicates)
	fmt.Println()

	tracesToSend := make([]traceToSend, 0, totalTraces+totalDuplicates)
	for traceIndex := 1; traceIndex <= totalTraces; traceIndex++ {
		jsonData, err := json.Marshal(generateTrace(traceIndex))
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to generate JSON for trace %d: %v\n", traceIndex, err)
			os.Exit(1)
		}
		tracesToSend = append(tracesToSend, traceToSend{traceIndex: traceIndex, jsonData: jsonData, isOriginal: true})
	}
	for i := 0; i < totalDuplicates; i++ {
		original := tracesToSend[i%totalTraces]
		tracesToSend = append(tracesToSend, traceToSend{traceIndex: original.traceIndex, jsonData: original.jsonData})
	}
	// originals sort before their duplicates
	sort.SliceStable(tracesToSend, func(i, j int) bool {
		return tracesToSend[i].traceIndex < tracesToSend[j].traceIndex
	})

	var (
		wg         sync.WaitGroup
		workerChan = make(chan struct{}, parallel)
		failures   int64
		accepted   int64
		conflicted int64
		unexpected int64
	)
	for _, trace := range tracesToSend {
		wg.Add(1)
		workerChan <- struct{}{}

		go func(tr traceToSend) {
			defer wg.Done()
			defer func() { <-workerChan }()

			statusCode, err := sendTrace(baseURL, tr)
			if err != nil {
				atomic.AddInt64(&failures, 1)
				fmt.Fprintf(os.Stderr, "ERROR: Trace %d failed: %v\n", tr.traceIndex, err)
				return
			}
			switch {
			case statusCode == http.StatusAccepted && tr.isOriginal:
				atomic.AddInt64(&accepted, 1)
			case statusCode == http.StatusConflict && !tr.isOriginal:
				atomic.AddInt64(&conflicted, 1)
			default:
				atomic.AddInt64(&unexpected, 1)
				fmt.Fprintf(os.Stderr, "ERROR: Trace %d (original=%v) got status %d\n", tr.traceIndex, tr.isOriginal, statusCode)
			}
		}(trace)
	}
	wg.Wait()

	fmt.Println("=== Upload statistics ===")
	fmt.Printf("Accepted request: %d\n", accepted)
	fmt.Printf("Conflicted request: %d\n", conflicted)
	fmt.Printf("Unexpected status: %d\n", unexpected)
	fmt.Printf("Failed request: %d\n", failures)
	fmt.Println()
	if failures > 0 || unexpected > 0 {
		os.Exit(1)
	}

	fmt.Println("Waiting for background summaries...")
	deadline := time.Now().Add(summaryTimeout)
	for traceIndex := 1; traceIndex <= totalTraces; traceIndex++ {
		summary, err := waitForSummary(baseURL, traceKey(traceIndex), deadline)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Trace %d: %v\n", traceIndex, err)
			os.Exit(1)
		}
		if err := checkSummary(summary); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Trace %d: %v\n", traceIndex, err)
			os.Exit(1)
		}
	}
	fmt.Printf("All %d summaries verified\n", totalTraces)

	for _, path := range []string{"/report", "/performance?format=text", "/segment?fromFrame=10&toFrame=19&actor=pawn"} {
		body, err := get(baseURL + "/traces/" + traceKey(1) + path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: GET %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("=== %s ===\n%s\n", path, body)
	}
	fmt.Println("Scenario completed successfully")
}

func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find go.mod, run from the project root")
		}
		dir = parent
	}
}

func traceKey(traceIndex int) string {
	return fmt.Sprintf("trace%06d", traceIndex)
}

func generateTrace(traceIndex int) traceUpload {
	tokens := make([]wireToken, 0, framesPerTrace*4)
	for frame := 0; frame < framesPerTrace; frame++ {
		tokens = append(tokens, wireToken{Type: "frameMarker", RelativeTime: float64(frame) * frameSeconds})

		socket, bytesSent := 1, int64(otherBytes)
		if frame%2 == 1 {
			socket, bytesSent = 0, exemptBytes
		}
		tokens = append(tokens,
			wireToken{Type: "socketSendTo", SocketIdentity: socket, BytesSent: bytesSent},
			wireToken{
				Type:          "replicateActor",
				ActorIdentity: 2,
				TimeMs:        float64((traceIndex+frame)%7) * 0.1,
				Properties:    []wireProperty{{PropertyIdentity: 3, NumBits: propertyBits, NumPotentialBits: propertyBits}},
			},
			wireToken{Type: "sendRPC", ActorIdentity: 2, FunctionIdentity: 4, NumBits: rpcBits},
		)
	}
	return traceUpload{Names: names, FirstFrameDeltaTime: frameSeconds, Tokens: tokens}
}

func checkSummary(s *segmentSummary) error {
	checks := []struct {
		name      string
		got, want int
	}{
		{"numFrames", s.NumFrames, framesPerTrace},
		{"actorCount", s.ActorCount, framesPerTrace},
		{"propertyCount", s.PropertyCount, framesPerTrace},
		{"rpcCount", s.RPCCount, framesPerTrace},
		{"exemptSocketCount", s.ExemptSocketCount, framesPerTrace / 2},
		{"otherSocketCount", s.OtherSocketCount, framesPerTrace - framesPerTrace/2},
	}
	for _, c := range checks {
		if c.got != c.want {
			return fmt.Errorf("%s: got %d, want %d", c.name, c.got, c.want)
		}
	}
	return nil
}

func sendTrace(baseURL string, trace traceToSend) (int, error) {
	req, err := http.NewRequest(http.MethodPost, baseURL+"/traces", bytes.NewReader(trace.jsonData))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("idempotency-key", traceKey(trace.traceIndex))

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}

func waitForSummary(baseURL, traceID string, deadline time.Time) (*segmentSummary, error) {
	for {
		resp, err := http.Get(baseURL + "/traces/" + traceID + "/summary")
		if err != nil {
			return nil, err
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, err
		}

		if resp.StatusCode == http.StatusOK {
			var summary segmentSummary
			if err := json.Unmarshal(body, &summary); err != nil {
				return nil, fmt.Errorf("invalid summary: %w", err)
			}
			return &summary, nil
		}
		if resp.StatusCode != http.StatusNotFound {
			return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("summary not ready before deadline")
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func get(url string) (string, error) {
	resp, err := http.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}
	return string(body), nil
}
