// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/poiesic/litstore"
	"github.com/poiesic/litstore/ai"
	"github.com/poiesic/litstore/ingestion"
	"github.com/poiesic/litstore/pubmed"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "litstore",
		Usage: "Populate a vector knowledge base with biomedical literature abstracts",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			{
				Name:   "init",
				Usage:  "Enable the vector extension and create the schema",
				Action: initCommand,
				Flags: []cli.Flag{
					databaseURLFlag(),
				},
			},
			{
				Name:   "load",
				Usage:  "Fetch abstracts from PubMed, embed them, and load them into the database",
				Action: loadCommand,
				Flags: []cli.Flag{
					databaseURLFlag(),
					&cli.StringFlag{
						Name:     "email",
						Usage:    "Contact email sent to NCBI with every request (required by its usage policy)",
						EnvVars:  []string{"PUBMED_EMAIL"},
						Required: true,
					},
					&cli.StringFlag{
						Name:    "query",
						Aliases: []string{"q"},
						Usage:   "PubMed search term",
						Value:   "nutrition AND diabetes",
					},
					&cli.IntFlag{
						Name:  "max-papers",
						Usage: "Maximum number of papers to fetch",
						Value: 500,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of records to embed and commit in each batch",
						Value: 100,
					},
					&cli.DurationFlag{
						Name:  "batch-delay",
						Usage: "Pause after each batch commit",
						Value: 500 * time.Millisecond,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for embedding calls",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
						Value: "all-minilm",
					},
					&cli.IntFlag{
						Name:  "dimensions",
						Usage: "Embedding vector dimension (must match the storage schema)",
						Value: ai.DefaultDimensions,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func databaseURLFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "database-url",
		Aliases:  []string{"d"},
		Usage:    "PostgreSQL connection string",
		EnvVars:  []string{"DATABASE_URL"},
		Required: true,
	}
}

func initCommand(c *cli.Context) error {
	ctx := context.Background()

	store, err := newStore(c)
	if err != nil {
		return err
	}
	defer store.Close()

	fmt.Fprintln(os.Stderr, "Initializing database...")
	if err := store.Init(ctx); err != nil {
		// Missing privileges or an unreachable database is fatal; there is
		// nothing to retry.
		return cli.Exit(fmt.Sprintf("Error initializing database: %v\n"+
			"Ensure the connecting role can run 'CREATE EXTENSION vector' or that the extension is pre-installed.", err), 1)
	}
	fmt.Fprintln(os.Stderr, "Database initialized and vector extension is active.")

	return nil
}

func loadCommand(c *cli.Context) error {
	ctx := context.Background()

	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithDimensions(c.Int("dimensions")),
	)

	// Connecting also constructs the embedding client, which is reused for
	// every batch.
	store, err := newStoreWithConfig(c, aiConfig)
	if err != nil {
		return err
	}
	defer store.Close()

	// 1. Initialize DB and the vector extension
	fmt.Fprintln(os.Stderr, "Initializing database...")
	if err := store.Init(ctx); err != nil {
		return cli.Exit(fmt.Sprintf("Error initializing database: %v", err), 1)
	}
	fmt.Fprintln(os.Stderr, "Database initialized and vector extension is active.")

	// 2. Fetch papers from PubMed
	client, err := pubmed.NewClient(c.String("email"))
	if err != nil {
		return err
	}

	query := c.String("query")
	maxPapers := c.Int("max-papers")
	fmt.Fprintf(os.Stderr, "Fetching up to %d paper IDs for term: %q...\n", maxPapers, query)

	records, err := client.FetchAbstracts(ctx, query, maxPapers)
	if err != nil {
		return fmt.Errorf("fetching abstracts: %w", err)
	}

	if len(records) == 0 {
		fmt.Fprintln(os.Stderr, "No papers found. Exiting.")
		return nil
	}
	fmt.Fprintf(os.Stderr, "Processed %d papers with abstracts.\n", len(records))

	// 3. Embed and load into the database
	loadConfig := &ingestion.Config{
		BatchSize:      c.Int("batch-size"),
		BatchDelay:     c.Duration("batch-delay"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
		ReportInterval: c.Int("batch-size"),
	}
	if loadConfig.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if loadConfig.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	loader, err := store.NewLoader(loadConfig, os.Stderr)
	if err != nil {
		return err
	}

	if err := loader.Run(ctx, records); err != nil {
		return fmt.Errorf("load failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "\nVector database populated: %d abstracts, each with a %d-dimension embedding.\n",
		len(records), c.Int("dimensions"))

	return nil
}

func newStore(c *cli.Context) (*litstore.Store, error) {
	return newStoreWithConfig(c, ai.DefaultConfig())
}

func newStoreWithConfig(c *cli.Context, aiConfig *ai.Config) (*litstore.Store, error) {
	store, err := litstore.NewStore(c.String("database-url"), litstore.WithAIConfig(aiConfig))
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return store, nil
}

func setup(c *cli.Context) error {
	// Optional .env file for DATABASE_URL and friends; absence is fine.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not load .env file", "err", err)
	}

	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
