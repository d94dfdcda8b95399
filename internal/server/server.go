package server

import (
	"github.com/hashicorp/go-hclog"
	"gorm.io/gorm"

	"github.com/Wilcolab/Anythink-Market-1po63owv/internal/config"
	"github.com/Wilcolab/Anythink-Market-1po63owv/pkg/comments"
	"github.com/Wilcolab/Anythink-Market-1po63owv/pkg/events"
)

// Server contains the server configuration.
type Server struct {
	// Config is the config for the server.
	Config *config.Config

	// DB is the database for the server. It backs the health check; comment
	// access goes through Comments.
	DB *gorm.DB

	// Comments is the comment store.
	Comments comments.Store

	// Events publishes comment lifecycle events. NopPublisher when Kafka is
	// not configured.
	Events events.Publisher

	// Logger is the logger for the server.
	Logger hclog.Logger
}
