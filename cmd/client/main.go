package main

import (
	"context"
	"log"

	"github.com/mpetrovs/newsbrief/internal/client/cli"
	"github.com/mpetrovs/newsbrief/internal/client/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
