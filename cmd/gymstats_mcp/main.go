// Package main runs the gymstats insights MCP server over stdio.
// Logs go to stderr, stdout belongs to the MCP transport.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/2beens/gyminsights/internal/config"
	"github.com/2beens/gyminsights/internal/db"
	"github.com/2beens/gyminsights/internal/gymstats/insights"
	gymstatsmcp "github.com/2beens/gyminsights/internal/gymstats/mcp"
	"github.com/2beens/gyminsights/internal/gymstats/repo"
	"github.com/2beens/gyminsights/internal/logging"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development | ddev | dockerdev]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	log.SetOutput(os.Stderr)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	log.SetLevel(logging.GetLevel(cfg.LogLevel))

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("insights location: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     os.Getenv("GYMINSIGHTS_DB_PASS"),
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	engine := insights.NewEngine(repo.NewRepo(dbPool), insights.WithLocation(loc))
	server := gymstatsmcp.NewServer(gymstatsmcp.NewPoolSchemaRepo(dbPool), engine)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Errorf("mcp server: %v", err)
	}
}
