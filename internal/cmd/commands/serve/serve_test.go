package serve

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wilcolab/Anythink-Market-1po63owv/internal/cmd/base"
	"github.com/Wilcolab/Anythink-Market-1po63owv/internal/config"
	"github.com/Wilcolab/Anythink-Market-1po63owv/internal/server"
	"github.com/Wilcolab/Anythink-Market-1po63owv/pkg/comments"
	"github.com/Wilcolab/Anythink-Market-1po63owv/pkg/database"
	"github.com/Wilcolab/Anythink-Market-1po63owv/pkg/events"
	"github.com/Wilcolab/Anythink-Market-1po63owv/pkg/models"
)

func newTestCommand(fs afero.Fs) *Command {
	return &Command{
		Command: base.NewCommand(hclog.NewNullLogger(), cli.NewMockUi()),
		Fs:      fs,
	}
}

func parseFlags(t *testing.T, c *Command, args ...string) {
	t.Helper()
	f := c.Flags()
	require.NoError(t, f.Parse(args))
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv(configEnvVar, "")
	c := newTestCommand(afero.NewMemMapFs())
	parseFlags(t, c)

	cfg, err := c.loadConfig()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultAddr, cfg.Server.Addr)
	assert.Equal(t, database.DriverSQLite, cfg.Database.Driver)
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "anythink.hcl", []byte(`
log_level = "warn"

server {
  addr = "0.0.0.0:8080"
}
`), 0o644))

	c := newTestCommand(fs)
	parseFlags(t, c, "-config=anythink.hcl", "-addr=127.0.0.1:9999", "-log-level=debug")

	cfg, err := c.loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9999", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_EnvVar(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/anythink.hcl", []byte(`
server {
  addr = "0.0.0.0:4000"
}
`), 0o644))
	t.Setenv(configEnvVar, "/etc/anythink.hcl")

	c := newTestCommand(fs)
	parseFlags(t, c)

	cfg, err := c.loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:4000", cfg.Server.Addr)
}

func TestLoadConfig_InvalidLogLevelFlag(t *testing.T) {
	t.Setenv(configEnvVar, "")
	c := newTestCommand(afero.NewMemMapFs())
	parseFlags(t, c, "-log-level=loud")

	_, err := c.loadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_level")
}

func TestSetupDatabase_SQLite(t *testing.T) {
	c := newTestCommand(afero.NewMemMapFs())
	cfg := config.NewDefault()
	cfg.Database.Path = ":memory:"

	db, err := c.setupDatabase(context.Background(), cfg)
	require.NoError(t, err)

	store := comments.NewGormStore(db, nil)
	require.NoError(t, store.Create(context.Background(), &models.Comment{Body: "hello"}))

	all, err := store.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSetupPublisher_Disabled(t *testing.T) {
	c := newTestCommand(afero.NewMemMapFs())

	pub, err := c.setupPublisher(config.NewDefault())
	require.NoError(t, err)
	assert.IsType(t, events.NopPublisher{}, pub)
}

func TestNewMux(t *testing.T) {
	c := newTestCommand(afero.NewMemMapFs())
	cfg := config.NewDefault()
	cfg.Database.Path = ":memory:"
	db, err := c.setupDatabase(context.Background(), cfg)
	require.NoError(t, err)

	store := comments.NewGormStore(db, nil)
	comment := models.Comment{Body: "Is this still for sale?"}
	require.NoError(t, store.Create(context.Background(), &comment))

	mux := NewMux(server.Server{
		Config:   cfg,
		DB:       db,
		Comments: store,
		Events:   events.NopPublisher{},
		Logger:   hclog.NewNullLogger(),
	})

	tests := []struct {
		method     string
		path       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{"GET", "/health", "", http.StatusOK, `"maxOpenConnections":1`},
		{"GET", "/api/comments", "", http.StatusOK, comment.ID},
		{"GET", "/api/case", "", http.StatusOK, `"kebab"`},
		{"POST", "/api/case/kebab", `{"input":"Hello World"}`, http.StatusOK, `"hello-world"`},
		{"DELETE", "/api/comments/" + comment.ID, "", http.StatusOK, "Comment deleted"},
		{"DELETE", "/api/comments/" + comment.ID, "", http.StatusNotFound, "Comment not found"},
		{"GET", "/api/unknown", "", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestHelp(t *testing.T) {
	c := newTestCommand(nil)
	help := c.Help()
	assert.Contains(t, help, "Usage: anythink serve")
	assert.Contains(t, help, "-config=<string>")
	assert.Contains(t, help, "-addr=<string>")
}

