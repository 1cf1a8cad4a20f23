package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/dgckit/go-dgc-verifier/internal/config"
	"github.com/dgckit/go-dgc-verifier/internal/logger"
	"github.com/dgckit/go-dgc-verifier/internal/verifier"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("dgc-verifier")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	app, err := verifier.NewApp(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init verifier app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("verifier run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
