package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// maxRequestBodyBytes bounds decoded request bodies.
const maxRequestBodyBytes = 1 << 20

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is returned by operations with no other result.
type MessageResponse struct {
	Message string `json:"message"`
}

// parseResourceIDFromURL parses a URL path with the format
// "{prefix}/{resourceID}" and returns the resource ID.
func parseResourceIDFromURL(url, prefix string) (string, error) {
	url = strings.TrimPrefix(url, prefix)

	// Remove empty entries and validate path.
	var resultPath []string
	for _, v := range strings.Split(url, "/") {
		if v != "" {
			resultPath = append(resultPath, v)
		}
	}
	// Only a single path element is allowed. For example, if the url is
	// "{prefix}/{id}" then resultPath is ["{id}"].
	if len(resultPath) > 1 {
		return "", fmt.Errorf("invalid URL path")
	}
	if len(resultPath) == 0 {
		return "", fmt.Errorf("no resource ID set in url path")
	}

	return resultPath[0], nil
}

// decodeRequest decodes the JSON request body into v. The body must hold
// exactly one JSON value.
func decodeRequest(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("error decoding request body: %w", err)
	}
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("error decoding request body: unexpected data after JSON value")
	}
	return nil
}

// respondJSON writes v as a JSON response with the given status code.
func respondJSON(
	w http.ResponseWriter, status int, v any, log hclog.Logger, logArgs []any,
) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("error encoding response",
			append(logArgs, "error", err)...)
	}
}

// respondError writes a JSON error body with the given status code.
func respondError(
	w http.ResponseWriter, status int, msg string, log hclog.Logger, logArgs []any,
) {
	respondJSON(w, status, ErrorResponse{Error: msg}, log, logArgs)
}
