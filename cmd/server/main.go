package main

import (
	"context"
	"log"

	"github.com/mpetrovs/newsbrief/internal/server"
	"github.com/mpetrovs/newsbrief/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
