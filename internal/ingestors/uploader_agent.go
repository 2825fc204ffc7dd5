package ingestors

import (
	"strings"

	"github.com/mileusna/useragent"
)

const maxUploaderAgentLen = 256

// normalizeUploaderAgent reduces a User-Agent header to the client family recorded in the trace
// catalog, e.g. "Chrome 121.0" or "curl". Unparseable agents are kept verbatim, truncated.
func normalizeUploaderAgent(ua string) string {
	ua = strings.TrimSpace(ua)
	if ua == "" {
		return "unknown"
	}

	parsed := useragent.Parse(ua)
	if parsed.Name != "" {
		if parsed.Version != "" {
			return parsed.Name + " " + parsed.Version
		}
		return parsed.Name
	}

	if len(ua) > maxUploaderAgentLen {
		return ua[:maxUploaderAgentLen]
	}
	return ua
}
