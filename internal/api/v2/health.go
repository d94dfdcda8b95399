package api

import (
	"net/http"

	"github.com/Wilcolab/Anythink-Market-1po63owv/internal/server"
	"github.com/Wilcolab/Anythink-Market-1po63owv/pkg/database"
)

// HealthResponse is the response for GET /health.
type HealthResponse struct {
	Status   string              `json:"status"`
	Database *database.PoolStats `json:"database,omitempty"`
}

// HealthHandler reports whether the server can reach its database, along
// with connection pool statistics.
// Endpoint: GET /health
func HealthHandler(srv server.Server) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logArgs := []any{
			"path", r.URL.Path,
			"method", r.Method,
		}

		switch r.Method {
		case "GET":
			if srv.DB == nil {
				respondJSON(w, http.StatusOK,
					HealthResponse{Status: "ok"}, srv.Logger, logArgs)
				return
			}

			sqlDB, err := srv.DB.DB()
			if err == nil {
				err = sqlDB.PingContext(r.Context())
			}
			if err != nil {
				srv.Logger.Warn("database health check failed",
					append(logArgs, "error", err)...)
				respondError(w, http.StatusServiceUnavailable,
					"Database unavailable", srv.Logger, logArgs)
				return
			}

			stats, err := database.GetPoolStats(srv.DB)
			if err != nil {
				srv.Logger.Error("error reading database pool stats",
					append(logArgs, "error", err)...)
				respondError(w, http.StatusInternalServerError,
					"Internal server error", srv.Logger, logArgs)
				return
			}

			respondJSON(w, http.StatusOK,
				HealthResponse{Status: "ok", Database: stats}, srv.Logger, logArgs)

		default:
			respondError(w, http.StatusMethodNotAllowed,
				"Method not allowed", srv.Logger, logArgs)
		}
	})
}
