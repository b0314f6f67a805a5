package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dmitrijs2005/neontetris/internal/common"
)

type okResponse struct {
	OK bool `json:"ok"`
}

type errorResponse struct {
	OK    bool        `json:"ok"`
	Error string      `json:"error"`
	Code  common.Kind `json:"code"`
}

type notFoundResponse struct {
	Error string      `json:"error"`
	Code  common.Kind `json:"code"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError reports any operation failure as 400 with the error text
// unchanged. Unexpected failures are logged with their cause.
func (s *HTTPServer) writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := common.KindOf(err)
	if kind == common.KindInternal || kind == common.KindStoreUnavailable {
		s.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "kind", kind, "error", err, "request_id", requestID(r.Context()))
	} else {
		s.logger.Debug(r.Context(), "request rejected", "path", r.URL.Path, "kind", kind, "error", err.Error())
	}
	writeJSON(w, http.StatusBadRequest, errorResponse{OK: false, Error: err.Error(), Code: kind})
}

func writeNotFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, notFoundResponse{
		Error: common.ErrorRouteNotFound.Message,
		Code:  common.ErrorRouteNotFound.Kind,
	})
}

var errBodyTooLarge = common.NewError(common.KindMalformedRequest, "Request body too large")

// readBody returns the request body, or "{}" when it is empty.
func (s *HTTPServer) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body := r.Body
	if s.opts.MaxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, s.opts.MaxBodyBytes)
	}

	b, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, errBodyTooLarge
		}
		return nil, common.WrapError(common.KindMalformedRequest, common.ErrorMalformedRequest.Message, err)
	}

	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return []byte("{}"), nil
	}
	return b, nil
}

// decodeObject reads a JSON object body into its top-level fields.
func (s *HTTPServer) decodeObject(w http.ResponseWriter, r *http.Request) (map[string]json.RawMessage, error) {
	b, err := s.readBody(w, r)
	if err != nil {
		return nil, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil || fields == nil {
		return nil, common.ErrorMalformedRequest
	}
	return fields, nil
}

// stringField returns fields[key] when it is a JSON string, else "".
func stringField(fields map[string]json.RawMessage, key string) string {
	var v string
	if raw, ok := fields[key]; ok {
		_ = json.Unmarshal(raw, &v)
	}
	return v
}
