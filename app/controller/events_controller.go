package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"brioche-tracker/events"
)

// EventsController streams refresh events to clients over SSE
type EventsController struct {
	bus *events.Bus
}

// NewEventsController creates a new EventsController
func NewEventsController(bus *events.Bus) *EventsController {
	return &EventsController{bus: bus}
}

// Stream handles GET /api/events — a server-sent-events stream of
// data-refresh notifications. Clients rebuild their views on each event
// instead of patching state incrementally.
func (c *EventsController) Stream(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch, cancel := c.bus.Subscribe()
	defer cancel()

	// Initial comment so proxies flush headers right away.
	fmt.Fprint(w, ": connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case e, ok := <-ch:
			if !ok {
				return
			}
			data, err := json.Marshal(e)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "data: %s\n\n", data)
			flusher.Flush()
		}
	}
}
