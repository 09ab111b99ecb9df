package api

import (
	"encoding/json"
	"net/http"
)

// handleStats reports extraction latency over the rolling window plus
// current queue depth.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"extract":     s.stats.Snapshot(),
		"queue_depth": s.orchestrator.QueueDepth(),
	})
}
