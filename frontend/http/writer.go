package http

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"

	"github.com/wellfin/wellfin/finance"
	"github.com/wellfin/wellfin/pkg/log"
)

const jsonContentType = "application/json; charset=utf-8"

// WriteError communicates an error to an API client as a JSON object. Client
// and not-found errors carry their message; anything else is logged and
// reported as an internal error.
func WriteError(w http.ResponseWriter, err error) error {
	status, message := http.StatusInternalServerError, "internal server error"
	switch errors.Cause(err).(type) {
	case finance.ClientError:
		status, message = http.StatusBadRequest, err.Error()
	case finance.NotFoundError:
		status, message = http.StatusNotFound, err.Error()
	default:
		log.Error("http: internal error", log.Err(err))
	}

	w.Header().Set("Content-Type", jsonContentType)
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// WriteJSON writes v as a JSON document with status 200.
func WriteJSON(w http.ResponseWriter, v interface{}) error {
	w.Header().Set("Content-Type", jsonContentType)
	return json.NewEncoder(w).Encode(v)
}

// writeRawJSON writes an already encoded JSON document.
func writeRawJSON(w http.ResponseWriter, b []byte) error {
	w.Header().Set("Content-Type", jsonContentType)
	_, err := w.Write(b)
	return err
}
