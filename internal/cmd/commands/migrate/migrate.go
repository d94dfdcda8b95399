package migrate

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/Wilcolab/Anythink-Market-1po63owv/internal/cmd/base"
	"github.com/Wilcolab/Anythink-Market-1po63owv/internal/migrate"
)

const dsnEnvVar = "ANYTHINK_DATABASE_DSN"

type Command struct {
	*base.Command

	flagDSN     string
	flagTimeout time.Duration
}

func (c *Command) Synopsis() string {
	return "Apply database migrations"
}

func (c *Command) Help() string {
	return `Usage: anythink migrate -dsn=<dsn>

  Applies the embedded schema migrations to a PostgreSQL database. SQLite
  databases are created by "anythink serve" and need no migrations.

  Example:
    anythink migrate -dsn="host=localhost user=postgres password=postgres dbname=anythink port=5432 sslmode=disable"

` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("migrate", flag.ContinueOnError))

	f.StringVar(
		&c.flagDSN, "dsn", os.Getenv(dsnEnvVar),
		fmt.Sprintf("PostgreSQL connection string. Defaults to $%s.", dsnEnvVar),
	)
	f.DurationVar(
		&c.flagTimeout, "timeout", 30*time.Second,
		"Time allowed for connecting to the database.",
	)

	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if c.flagDSN == "" {
		c.UI.Error("error: -dsn flag is required\n\n" + c.Help())
		return 1
	}

	c.Log.Info("connecting to database")
	sqlDB, err := sql.Open("postgres", c.flagDSN)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error opening database: %v", err))
		return 1
	}
	defer sqlDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), c.flagTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		c.UI.Error(fmt.Sprintf("error connecting to database: %v", err))
		return 1
	}

	c.Log.Info("running migrations")
	if err := migrate.RunMigrations(sqlDB, "postgres"); err != nil {
		c.UI.Error(fmt.Sprintf("error running migrations: %v", err))
		return 1
	}

	v, dirty, err := migrate.GetMigrationVersion(sqlDB, "postgres")
	if err != nil {
		c.UI.Error(fmt.Sprintf("error reading migration version: %v", err))
		return 1
	}
	c.Log.Info("migrations complete", "version", v, "dirty", dirty)
	c.UI.Output(fmt.Sprintf("Database schema at version %d", v))

	return 0
}
