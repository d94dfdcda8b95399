package api

import (
	"errors"
	"net/http"

	"github.com/Wilcolab/Anythink-Market-1po63owv/internal/server"
	"github.com/Wilcolab/Anythink-Market-1po63owv/pkg/casing"
)

const casePath = "/api/case"

// CaseRequest is the body of POST /api/case/{policy}. Input is any JSON
// value; only strings convert.
type CaseRequest struct {
	Input  any  `json:"input"`
	Strict bool `json:"strict"`
}

// CaseResponse is the response for POST /api/case/{policy}.
type CaseResponse struct {
	Policy string `json:"policy"`
	Output string `json:"output"`
}

// CasePoliciesResponse is the response for GET /api/case.
type CasePoliciesResponse struct {
	Policies []casing.Policy `json:"policies"`
}

// CasePoliciesHandler lists the supported case policies.
// Endpoint: GET /api/case
func CasePoliciesHandler(srv server.Server) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logArgs := []any{
			"path", r.URL.Path,
			"method", r.Method,
		}

		switch r.Method {
		case "GET":
			respondJSON(w, http.StatusOK,
				CasePoliciesResponse{Policies: casing.Policies()}, srv.Logger, logArgs)

		default:
			respondError(w, http.StatusMethodNotAllowed,
				"Method not allowed", srv.Logger, logArgs)
		}
	})
}

// CaseHandler converts the request input with the policy named in the path.
// Endpoint: POST /api/case/{policy}
func CaseHandler(srv server.Server) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logArgs := []any{
			"path", r.URL.Path,
			"method", r.Method,
		}

		switch r.Method {
		case "POST":
			name, err := parseResourceIDFromURL(r.URL.Path, casePath)
			if err != nil {
				respondError(w, http.StatusNotFound,
					"Unknown case policy", srv.Logger, logArgs)
				return
			}
			policy, err := casing.ParsePolicy(name)
			if err != nil {
				respondError(w, http.StatusNotFound,
					"Unknown case policy", srv.Logger, logArgs)
				return
			}
			logArgs = append(logArgs, "policy", policy)

			var req CaseRequest
			if err := decodeRequest(r, &req); err != nil {
				srv.Logger.Warn("error decoding case request",
					append(logArgs, "error", err)...)
				respondError(w, http.StatusBadRequest,
					"Bad request", srv.Logger, logArgs)
				return
			}

			out, err := casing.Convert(policy, req.Input, casing.Options{Strict: req.Strict})
			if err != nil {
				if errors.Is(err, casing.ErrInvalidArgument) {
					respondError(w, http.StatusBadRequest,
						"Input must be a string", srv.Logger, logArgs)
					return
				}
				srv.Logger.Error("error converting input",
					append(logArgs, "error", err)...)
				respondError(w, http.StatusInternalServerError,
					"Internal server error", srv.Logger, logArgs)
				return
			}

			respondJSON(w, http.StatusOK,
				CaseResponse{Policy: string(policy), Output: out}, srv.Logger, logArgs)

		default:
			respondError(w, http.StatusMethodNotAllowed,
				"Method not allowed", srv.Logger, logArgs)
		}
	})
}
