package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func loadFlags(t *testing.T) []cli.Flag {
	t.Helper()

	app := &cli.App{
		Commands: []*cli.Command{
			{
				Name: "load",
				Flags: []cli.Flag{
					databaseURLFlag(),
				},
			},
		},
	}
	return app.Commands[0].Flags
}

func TestDatabaseURLFlag(t *testing.T) {
	flags := loadFlags(t)

	urlFlag, ok := flags[0].(*cli.StringFlag)
	require.True(t, ok)
	assert.Equal(t, "database-url", urlFlag.Name)
	assert.True(t, urlFlag.Required)
	assert.Contains(t, urlFlag.EnvVars, "DATABASE_URL")
}

func TestLoadCommand_RequiresDatabaseURL(t *testing.T) {
	app := &cli.App{
		Name: "litstore",
		Commands: []*cli.Command{
			{
				Name:   "load",
				Action: loadCommand,
				Flags: []cli.Flag{
					databaseURLFlag(),
					&cli.StringFlag{
						Name:     "email",
						Required: true,
					},
				},
			},
		},
	}

	err := app.Run([]string{"litstore", "load", "--email", "maintainer@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database-url")
}

func TestSetupLogLevel(t *testing.T) {
	tests := []struct {
		level   string
		wantErr bool
	}{
		{level: "debug"},
		{level: "info"},
		{level: "warn"},
		{level: "error"},
		{level: "INFO"}, // case-insensitive
		{level: "verbose", wantErr: true},
		{level: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			defer slog.SetDefault(slog.Default())

			app := &cli.App{
				Name: "litstore",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "log-level", Value: "info"},
				},
				Before: setup,
				Action: func(c *cli.Context) error { return nil },
			}

			err := app.Run([]string{"litstore", "--log-level", tt.level})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
