package receipt

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// handlePing is a health check
func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}

// handleProcessReceipt validates, scores, and stores a submitted receipt
func (s *Server) handleProcessReceipt(w http.ResponseWriter, r *http.Request) {
	var raw any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	id, _, err := s.service.ProcessReceipt(raw)
	if err != nil {
		if IsValidationError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("Error processing receipt", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

// handleGetReceipt returns a stored receipt by ID
func (s *Server) handleGetReceipt(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	receipt, err := s.service.GetReceipt(id)
	if err != nil {
		if errors.Is(err, ErrReceiptNotFound) {
			writeError(w, http.StatusNotFound, "receipt not found")
			return
		}
		slog.Error("Error getting receipt", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, receipt)
}

// handleGetPoints returns the points for a stored receipt, backfilling the
// score if it has not been computed yet
func (s *Server) handleGetPoints(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	points, err := s.service.GetPoints(id)
	if err != nil {
		if errors.Is(err, ErrReceiptNotFound) {
			writeError(w, http.StatusNotFound, "receipt not found")
			return
		}
		slog.Error("Error getting points", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"points": points})
}
