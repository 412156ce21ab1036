// Package main is the folio CLI entry point.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/aneesh6214/folio/internal/config"
	"github.com/aneesh6214/folio/internal/content"
	"github.com/aneesh6214/folio/internal/corpus"
	"github.com/aneesh6214/folio/internal/models"
	"github.com/aneesh6214/folio/internal/render"
	"github.com/aneesh6214/folio/internal/search"
	"github.com/aneesh6214/folio/internal/server"
	"github.com/aneesh6214/folio/internal/watcher"
	"github.com/aneesh6214/folio/pkg/utils"
	"go.uber.org/zap"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/folio/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks for
// config.yaml in the current directory (for development); if that exists it is used,
// so that "folio server" from the project dir uses the project's config (including debug).
// Returns the config and the path that was actually loaded.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "search":
		runSearch()
	case "version", "--version", "-v":
		fmt.Printf("folio version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
	)

	store := content.NewStore(cfg.Content.Dir, cfg.Content.PostsDir)
	builder := corpus.NewBuilder(store, &cfg.Content, &cfg.Search)
	engine := search.NewEngine(builder, &cfg.Search)

	// Warm the corpus up front so a broken content tree fails at startup,
	// not on the first search request.
	items, err := builder.Build(context.Background())
	if err != nil {
		logger.Fatal("Failed to build corpus", zap.Error(err))
	}
	logger.Info("corpus built", zap.Int("items", len(items)))

	if cfg.Content.Watch {
		watchOpts := []watcher.Option{}
		if debugMode {
			watchOpts = append(watchOpts, watcher.WithLogger(logger))
		}
		w := watcher.New([]string{cfg.Content.Dir, cfg.Content.PostsDir}, builder.Reset, watchOpts...)
		watchCtx, watchCancel := context.WithCancel(context.Background())
		defer watchCancel()
		if err := w.Start(watchCtx); err != nil {
			logger.Fatal("Failed to start content watcher", zap.Error(err))
		}
		defer w.Stop()
		logger.Info("content watcher enabled",
			zap.String("dir", cfg.Content.Dir),
			zap.String("posts_dir", cfg.Content.PostsDir),
		)
	}

	srv := server.NewServer(engine, store, render.New(), &cfg.Server, logger)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

func runSearch() {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	fs.Usage = func() { printSearchUsage(fs) }
	_ = fs.Parse(os.Args[2:])

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	query := buildSearchQuery(fs.Args())
	endpoint := fmt.Sprintf("http://%s:%d/search?q=%s",
		cfg.Server.Host, cfg.Server.Port, url.QueryEscape(query))

	resp, err := http.Get(endpoint)
	if err != nil {
		fmt.Printf("Request failed (is the server running?): %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Server returned %s\n", resp.Status)
		os.Exit(1)
	}

	var results []models.SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		fmt.Printf("Failed to decode response: %v\n", err)
		os.Exit(1)
	}

	if len(results) == 0 {
		fmt.Println("No results.")
		return
	}
	if query == "" {
		fmt.Println("Suggestions:")
	}
	for i, r := range results {
		fmt.Println(formatResult(i+1, &r))
	}
}

// formatResult renders one result line for the terminal, with highlight
// markers stripped and the preview kept short.
func formatResult(rank int, r *models.SearchResult) string {
	line := fmt.Sprintf("%2d. %s (%s)", rank, r.Title, r.URL)
	if r.Score > 0 {
		line += fmt.Sprintf(" [score %d]", r.Score)
	}
	preview := utils.Truncate(utils.StripMarks(r.HighlightedPreview), 100)
	if preview != "" {
		line += "\n    " + preview
	}
	return line
}

// buildSearchQuery joins all positional args with spaces so multi-word queries
// work the same with or without shell quoting.
func buildSearchQuery(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

func printSearchUsage(fs *flag.FlagSet) {
	fmt.Fprintf(fs.Output(), "Usage: folio search [flags] <query>\n\n")
	fmt.Fprintf(fs.Output(), "Query is all remaining arguments joined by spaces. An empty query lists navigation suggestions.\n\n")
	fs.PrintDefaults()
	fmt.Fprintf(fs.Output(), `
Examples:
  folio search oracle
  folio search platform engineering
  folio search                          # navigation suggestions
`)
}

func printUsage() {
	fmt.Print(`folio - portfolio content and search server

Usage:
  folio server [-config path] [-debug]   start the HTTP server
  folio search [-config path] <query>    query a running server
  folio version                          print version
  folio help                             show this help
`)
}
