package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// streamSnapshots writes every delivered snapshot as one SSE event until the
// client goes away. The subscription is torn down exactly once on return.
func streamSnapshots[T any](w http.ResponseWriter, r *http.Request, logger *zap.Logger, subscribe func(fn func(T)) (func(), error)) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		respondError(w, http.StatusInternalServerError, "streaming_unsupported", "response writer does not support streaming")
		return
	}

	snapshots := make(chan T, 8)
	unsub, err := subscribe(func(snapshot T) {
		// The latest snapshot supersedes older ones; drop the oldest
		// buffered entry rather than blocking the publisher.
		for {
			select {
			case snapshots <- snapshot:
				return
			default:
				select {
				case <-snapshots:
				default:
				}
			}
		}
	})
	if err != nil {
		logger.Error("stream subscribe failed", zap.Error(err))
		handleServiceError(w, err)
		return
	}
	defer unsub()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case snapshot := <-snapshots:
			data, err := json.Marshal(snapshot)
			if err != nil {
				logger.Warn("stream snapshot marshal failed", zap.Error(err))
				continue
			}
			fmt.Fprintf(w, "data: %s\n\n", data)
			flusher.Flush()
		}
	}
}
