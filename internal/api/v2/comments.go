package api

import (
	"context"
	"net/http"
	"time"

	"github.com/Wilcolab/Anythink-Market-1po63owv/internal/server"
	"github.com/Wilcolab/Anythink-Market-1po63owv/pkg/events"
)

const commentsPath = "/api/comments"

// publishTimeout bounds publishing a comment event. Publishing is detached
// from the request, so a client disconnect does not drop the event.
const publishTimeout = 10 * time.Second

// CommentsHandler handles requests for the comment collection.
// Endpoint: GET /api/comments
func CommentsHandler(srv server.Server) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logArgs := []any{
			"path", r.URL.Path,
			"method", r.Method,
		}

		switch r.Method {
		case "GET":
			comments, err := srv.Comments.FindAll(r.Context())
			if err != nil {
				srv.Logger.Error("error fetching comments",
					append(logArgs, "error", err)...)
				respondError(w, http.StatusInternalServerError,
					"Failed to fetch comments", srv.Logger, logArgs)
				return
			}

			respondJSON(w, http.StatusOK, comments, srv.Logger, logArgs)

		default:
			respondError(w, http.StatusMethodNotAllowed,
				"Method not allowed", srv.Logger, logArgs)
		}
	})
}

// CommentHandler handles requests for a single comment.
// Endpoint: DELETE /api/comments/{id}
func CommentHandler(srv server.Server) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logArgs := []any{
			"path", r.URL.Path,
			"method", r.Method,
		}

		id, err := parseResourceIDFromURL(r.URL.Path, commentsPath)
		if err != nil {
			srv.Logger.Warn("error parsing comment ID from URL path",
				append(logArgs, "error", err)...)
			respondError(w, http.StatusBadRequest,
				"Bad request", srv.Logger, logArgs)
			return
		}
		logArgs = append(logArgs, "comment_id", id)

		switch r.Method {
		case "DELETE":
			res, err := srv.Comments.DeleteByID(r.Context(), id)
			if err != nil {
				srv.Logger.Error("error deleting comment",
					append(logArgs, "error", err)...)
				respondError(w, http.StatusInternalServerError,
					"Error deleting comment", srv.Logger, logArgs)
				return
			}
			if res.DeletedCount == 0 {
				respondError(w, http.StatusNotFound,
					"Comment not found", srv.Logger, logArgs)
				return
			}

			if srv.Events != nil {
				event := events.NewCommentDeletedEvent(id)
				ctx, cancel := context.WithTimeout(
					context.WithoutCancel(r.Context()), publishTimeout)
				err := srv.Events.PublishCommentEvent(ctx, event)
				cancel()
				if err != nil {
					srv.Logger.Warn("error publishing comment event",
						append(logArgs, "event_id", event.ID, "error", err)...)
				}
			}

			srv.Logger.Info("deleted comment", logArgs...)
			respondJSON(w, http.StatusOK,
				MessageResponse{Message: "Comment deleted"}, srv.Logger, logArgs)

		default:
			respondError(w, http.StatusMethodNotAllowed,
				"Method not allowed", srv.Logger, logArgs)
		}
	})
}
