package api

import (
	"fmt"
	"net/http"
	"time"
)

// Health endpoints are unconditional: the request path has no external
// dependencies, so there is nothing meaningful to probe. The optional
// datastore/cache handles are placeholders and deliberately do not influence
// readiness (they would only matter once validation results are cached).

// HandleHealth returns the overall service status.
//
//	GET /health
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"version": serviceVersion,
		"uptime":  formatUptime(time.Since(h.startTime)),
	})
}

// HandleReadiness reports readiness to accept traffic. Always ready: the
// service is fully functional the moment the listener is up.
//
//	GET /health/ready
func (h *Handlers) HandleReadiness(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"ready": true,
	})
}

// HandleLiveness is a simple liveness probe — returns 200 while the process
// is running. Suitable for Kubernetes/ECS liveness probes.
//
//	GET /health/live
func (h *Handlers) HandleLiveness(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"alive":  true,
		"uptime": formatUptime(time.Since(h.startTime)),
	})
}

// formatUptime produces a human-readable uptime string like "3d 4h 12m 5s".
func formatUptime(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}
