package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/fleetdesk/internal/config"
	"github.com/dmitrijs2005/fleetdesk/internal/console"
	"github.com/dmitrijs2005/fleetdesk/internal/logging"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewLogrusLogger(os.Stderr, cfg.LogFormat)

	app, err := console.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
