package migrate

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"

	"github.com/Wilcolab/Anythink-Market-1po63owv/internal/cmd/base"
)

func TestMigrate_RequiresDSN(t *testing.T) {
	t.Setenv(dsnEnvVar, "")
	ui := cli.NewMockUi()
	c := &Command{Command: base.NewCommand(hclog.NewNullLogger(), ui)}

	code := c.Run(nil)
	assert.Equal(t, 1, code)
	assert.Contains(t, ui.ErrorWriter.String(), "-dsn flag is required")
}

func TestMigrate_Unreachable(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping connection timeout test in short mode")
	}

	ui := cli.NewMockUi()
	c := &Command{Command: base.NewCommand(hclog.NewNullLogger(), ui)}

	code := c.Run([]string{
		"-dsn=host=127.0.0.1 port=1 user=postgres dbname=anythink sslmode=disable connect_timeout=1",
		"-timeout=2s",
	})
	assert.Equal(t, 1, code)
	assert.Contains(t, ui.ErrorWriter.String(), "error connecting to database")
}
