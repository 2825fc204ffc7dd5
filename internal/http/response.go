package http

import (
	"encoding/json"
	"net/http"
	"strings"
)

func writeJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

// writeLines writes lines as a text/plain body, one per line.
func writeLines(w http.ResponseWriter, lines []string) error {
	w.Header().Set("Content-Type", contentTypeText)
	w.WriteHeader(http.StatusOK)
	if len(lines) == 0 {
		return nil
	}
	_, err := w.Write([]byte(strings.Join(lines, "\n") + "\n"))
	return err
}
