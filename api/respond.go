package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// maxBodyBytes bounds request bodies accepted by the write endpoints.
const maxBodyBytes = 1 << 20

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", slog.Any("err", err))
	}
}

func writeMessage(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, messageResponse{Message: msg}, status)
}

// writeFailure logs the cause and answers 500 with a fixed message.
func writeFailure(w http.ResponseWriter, r *http.Request, msg string, err error) {
	logger.Error(msg,
		slog.Any("err", err),
		slog.String("path", r.URL.Path),
		slog.String("request_id", RequestID(r.Context())),
	)
	writeMessage(w, msg, http.StatusInternalServerError)
}

// pathID reads the {id} route variable. The router only matches digits, so
// a parse failure means the value overflowed int64.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// listOrEmpty keeps list responses encoded as [] rather than null.
func listOrEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// serveRecord answers a by-id lookup: 404 with notFound when the record is
// absent, 500 with failed when the store errors.
func serveRecord[T any](w http.ResponseWriter, r *http.Request, get func(id int64) (*T, error), notFound, failed string) {
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, notFound, http.StatusNotFound)
		return
	}
	rec, err := get(id)
	if err != nil {
		writeFailure(w, r, failed, err)
		return
	}
	if rec == nil {
		writeMessage(w, notFound, http.StatusNotFound)
		return
	}
	writeJSON(w, rec, http.StatusOK)
}
