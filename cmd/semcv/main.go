// Copyright 2025 Semcv Contributors
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
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/semcv/semcv"
	"github.com/semcv/semcv/ai"
	"github.com/semcv/semcv/core"
	"github.com/semcv/semcv/storage"
	"github.com/semcv/semcv/storage/badger"
)

func main() {
	app := &cli.App{
		Name:  "semcv",
		Usage: "Semantic indexing and search for CV documents",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "ingest",
				Usage:  "Ingest a CV document and queue it for indexing",
				Action: ingestCommand,
				Flags: append(dbFlag(), append(aiFlags(),
					&cli.StringFlag{
						Name:    "file",
						Aliases: []string{"f"},
						Usage:   "Path to a CV text file (reads stdin if omitted)",
					})...),
			},
			{
				Name:   "worker",
				Usage:  "Run the indexing worker until interrupted",
				Action: workerCommand,
				Flags:  append(dbFlag(), aiFlags()...),
			},
			{
				Name:      "search",
				Usage:     "Search indexed CV content",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: append(dbFlag(), append(aiFlags(),
					&cli.IntFlag{
						Name:    "max-hits",
						Aliases: []string{"n"},
						Usage:   "Maximum number of hits to return",
						Value:   5,
					})...),
			},
			{
				Name:      "get",
				Usage:     "Print a stored record by ID",
				ArgsUsage: "<record-id>",
				Action:    getCommand,
				Flags:     dbFlag(),
			},
			{
				Name:   "latest",
				Usage:  "Print the most recently stored record",
				Action: latestCommand,
				Flags:  dbFlag(),
			},
			{
				Name:   "list",
				Usage:  "List recently stored records",
				Action: listCommand,
				Flags: append(dbFlag(),
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"n"},
						Usage:   "Maximum number of records to list",
						Value:   20,
					}),
			},
			{
				Name:   "status",
				Usage:  "Show record count and queue depths",
				Action: statusCommand,
				Flags:  dbFlag(),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func dbFlag() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "db",
			Aliases:  []string{"d"},
			Usage:    "Path to the database directory",
			Required: true,
		},
	}
}

func aiFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "host",
			Usage: "OpenAI-compatible service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "embeddinggemma",
		},
		&cli.StringFlag{
			Name:  "structurer-model",
			Usage: "CV structuring model name",
			Value: "qwen2.5:3b",
		},
		&cli.IntFlag{
			Name:  "dimension",
			Usage: "Embedding vector width",
			Value: 768,
		},
	}
}

func aiConfigFromFlags(c *cli.Context) *ai.Config {
	return ai.NewConfig(
		ai.WithHost(c.String("host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithStructurerModel(c.String("structurer-model")),
		ai.WithDimension(c.Int("dimension")),
	)
}

func openDatabase(c *cli.Context) (*semcv.Database, error) {
	db, err := semcv.NewDatabase(c.String("db"), semcv.WithAIConfig(aiConfigFromFlags(c)))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func ingestCommand(c *cli.Context) error {
	var rawText []byte
	var err error
	metadata := map[string]string{}

	if file := c.String("file"); file != "" {
		rawText, err = os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
		metadata["filename"] = filepath.Base(file)
	} else {
		rawText, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	pipeline, err := db.NewIngestPipeline()
	if err != nil {
		return err
	}

	result, err := pipeline.IngestText(c.Context, string(rawText), metadata)
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	fmt.Printf("%s\t%s\n", result.Id, result.Status)
	return nil
}

func workerCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	indexer, err := db.NewIndexer()
	if err != nil {
		return err
	}
	defer indexer.Release()

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := indexer.Start(ctx); err != nil {
		return err
	}

	slog.Info("indexing worker started", "db", c.String("db"))
	<-ctx.Done()
	slog.Info("shutting down")
	return nil
}

func searchCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("query is required")
	}
	query := strings.Join(c.Args().Slice(), " ")

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	searcher, err := db.NewSearcher()
	if err != nil {
		return err
	}

	hits, err := searcher.Search(c.Context, query, c.Int("max-hits"))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	fmt.Printf("Found %d hits\n", len(hits))
	for i, hit := range hits {
		fmt.Printf("%d: [%0.3f] (%s/%s) %s\n", i+1, hit.Score, shortID(hit.RecordId), hit.Section, hit.Text)
	}
	return nil
}

func getCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("record ID is required")
	}
	id := core.ID(c.Args().First())
	if err := core.ValidateID(id); err != nil {
		return err
	}

	backend, recordRepo, err := openRepository(c)
	if err != nil {
		return err
	}
	defer func() {
		recordRepo.Close()
		backend.Close()
	}()

	record, err := recordRepo.GetRecord(c.Context, id)
	if err != nil {
		return fmt.Errorf("failed to get record: %w", err)
	}

	printRecord(record)
	return nil
}

func latestCommand(c *cli.Context) error {
	backend, recordRepo, err := openRepository(c)
	if err != nil {
		return err
	}
	defer func() {
		recordRepo.Close()
		backend.Close()
	}()

	record, err := recordRepo.GetLatestRecord(c.Context)
	if err != nil {
		return fmt.Errorf("failed to get latest record: %w", err)
	}

	printRecord(record)
	return nil
}

func listCommand(c *cli.Context) error {
	backend, recordRepo, err := openRepository(c)
	if err != nil {
		return err
	}
	defer func() {
		recordRepo.Close()
		backend.Close()
	}()

	summaries, err := recordRepo.ListRecentRecords(c.Context, c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list records: %w", err)
	}

	for _, summary := range summaries {
		fmt.Printf("%s\t%s\t%s\n", summary.Id,
			summary.CreatedAt.Format("2006-01-02 15:04:05"), summary.DisplayName)
	}
	return nil
}

func statusCommand(c *cli.Context) error {
	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	recordRepo, err := badger.NewRecordRepository(backend)
	if err != nil {
		return err
	}
	defer recordRepo.Close()

	eventQueue, err := badger.NewEventQueue(backend)
	if err != nil {
		return err
	}
	defer eventQueue.Close()

	count, err := recordRepo.CountRecords(c.Context)
	if err != nil {
		return err
	}
	depth, err := eventQueue.Depth(c.Context)
	if err != nil {
		return err
	}
	dead, err := eventQueue.DeadDepth(c.Context)
	if err != nil {
		return err
	}

	fmt.Printf("records:      %d\n", count)
	fmt.Printf("queued:       %d\n", depth)
	fmt.Printf("dead-letter:  %d\n", dead)
	return nil
}

func openRepository(c *cli.Context) (*badger.Backend, storage.RecordRepository, error) {
	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	recordRepo, err := badger.NewRecordRepository(backend)
	if err != nil {
		backend.Close()
		return nil, nil, fmt.Errorf("failed to create repository: %w", err)
	}

	return backend, recordRepo, nil
}

func printRecord(record *core.Record) {
	fmt.Printf("ID:       %s\n", record.Id)
	fmt.Printf("Created:  %s\n", record.CreatedAt.Format("2006-01-02 15:04:05"))
	for key, value := range record.Metadata {
		fmt.Printf("Meta:     %s=%s\n", key, value)
	}
	fmt.Println()
	fmt.Println(record.RawText)
}

func shortID(id core.ID) string {
	if len(id) > 8 {
		return string(id[:8])
	}
	return string(id)
}

func setupLogger(c *cli.Context) error {
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
