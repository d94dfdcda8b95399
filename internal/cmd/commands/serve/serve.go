package serve

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
	httptrace "gopkg.in/DataDog/dd-trace-go.v1/contrib/net/http"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
	"gorm.io/gorm"

	apiv2 "github.com/Wilcolab/Anythink-Market-1po63owv/internal/api/v2"
	"github.com/Wilcolab/Anythink-Market-1po63owv/internal/cmd/base"
	"github.com/Wilcolab/Anythink-Market-1po63owv/internal/config"
	"github.com/Wilcolab/Anythink-Market-1po63owv/internal/migrate"
	"github.com/Wilcolab/Anythink-Market-1po63owv/internal/server"
	"github.com/Wilcolab/Anythink-Market-1po63owv/internal/version"
	"github.com/Wilcolab/Anythink-Market-1po63owv/pkg/comments"
	"github.com/Wilcolab/Anythink-Market-1po63owv/pkg/database"
	"github.com/Wilcolab/Anythink-Market-1po63owv/pkg/events"
	"github.com/Wilcolab/Anythink-Market-1po63owv/pkg/models"
)

const (
	configEnvVar    = "ANYTHINK_CONFIG"
	shutdownTimeout = 30 * time.Second
)

type Command struct {
	*base.Command

	// Fs is the filesystem the config file is read from. Defaults to the OS
	// filesystem.
	Fs afero.Fs

	flagConfig   string
	flagAddr     string
	flagLogLevel string
}

type endpoint struct {
	pattern string
	handler http.Handler
}

func (c *Command) Synopsis() string {
	return "Run the server"
}

func (c *Command) Help() string {
	return `Usage: anythink serve [-config=config.hcl]

  Runs the anythink HTTP server.

  Without a config file the server listens on ` + config.DefaultAddr + ` and stores
  comments in the SQLite database ` + config.DefaultSQLitePath + `.

` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("serve", flag.ContinueOnError))

	f.StringVar(
		&c.flagConfig, "config", os.Getenv(configEnvVar),
		fmt.Sprintf("Path to the HCL config file. Defaults to $%s.", configEnvVar),
	)
	f.StringVar(
		&c.flagAddr, "addr", "",
		"Address to bind to. Overrides the server block of the config file.",
	)
	f.StringVar(
		&c.flagLogLevel, "log-level", "",
		"Log level (trace, debug, info, warn, error). Overrides log_level.",
	)

	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	cfg, err := c.loadConfig()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error loading config: %v", err))
		return 1
	}
	c.Log.SetLevel(hclog.LevelFromString(cfg.LogLevel))

	if cfg.Datadog.Enabled {
		tracer.Start(
			tracer.WithService(cfg.Datadog.Service),
			tracer.WithEnv(cfg.Datadog.Env),
			tracer.WithServiceVersion(version.Version),
		)
		defer tracer.Stop()
		c.Log.Info("datadog tracing enabled",
			"service", cfg.Datadog.Service,
			"env", cfg.Datadog.Env,
		)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := c.setupDatabase(ctx, cfg)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error setting up database: %v", err))
		return 1
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	publisher, err := c.setupPublisher(cfg)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error setting up event publisher: %v", err))
		return 1
	}
	defer publisher.Close()

	srv := server.Server{
		Config:   cfg,
		DB:       db,
		Comments: comments.NewGormStore(db, c.Log.Named("comments")),
		Events:   publisher,
		Logger:   c.Log.Named("server"),
	}

	var handler http.Handler = NewMux(srv)
	if cfg.Datadog.Enabled {
		handler = httptrace.WrapHandler(handler, cfg.Datadog.Service, "http.request")
	}

	httpSrv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Log.Info("listening", "addr", cfg.Server.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			c.UI.Error(fmt.Sprintf("error starting listener: %v", err))
			return 1
		}
	case <-ctx.Done():
	}

	c.Log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		c.UI.Error(fmt.Sprintf("error shutting down server: %v", err))
		return 1
	}

	return 0
}

// NewMux registers the API routes for srv.
func NewMux(srv server.Server) *http.ServeMux {
	endpoints := []endpoint{
		{"/api/comments", apiv2.CommentsHandler(srv)},
		{"/api/comments/", apiv2.CommentHandler(srv)},
		{"/api/case", apiv2.CasePoliciesHandler(srv)},
		{"/api/case/", apiv2.CaseHandler(srv)},
		{"/health", apiv2.HealthHandler(srv)},
	}

	mux := http.NewServeMux()
	for _, e := range endpoints {
		mux.Handle(e.pattern, e.handler)
	}
	return mux
}

func (c *Command) loadConfig() (*config.Config, error) {
	fs := c.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	cfg, err := config.Load(fs, c.flagConfig)
	if err != nil {
		return nil, err
	}

	if c.flagAddr != "" {
		cfg.Server.Addr = c.flagAddr
	}
	if c.flagLogLevel != "" {
		cfg.LogLevel = c.flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupDatabase connects to the configured database and brings its schema up
// to date.
func (c *Command) setupDatabase(ctx context.Context, cfg *config.Config) (*gorm.DB, error) {
	dbCfg := cfg.DatabaseConfig()
	db, err := database.Connect(ctx, dbCfg, c.Log.Named("database"))
	if err != nil {
		return nil, err
	}

	switch dbCfg.Driver {
	case database.DriverSQLite:
		if err := db.AutoMigrate(models.ModelsToAutoMigrate()...); err != nil {
			return nil, fmt.Errorf("error migrating sqlite database: %w", err)
		}
	case database.DriverPostgres:
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		if err := migrate.RunMigrations(sqlDB, database.DriverPostgres); err != nil {
			return nil, fmt.Errorf("error migrating postgres database: %w", err)
		}
	}

	return db, nil
}

func (c *Command) setupPublisher(cfg *config.Config) (events.Publisher, error) {
	kafkaCfg, enabled := cfg.KafkaConfig()
	if !enabled {
		c.Log.Debug("kafka not configured, comment events disabled")
		return events.NopPublisher{}, nil
	}
	return events.NewKafkaPublisher(kafkaCfg, c.Log.Named("events"))
}
