package main

import (
	"context"
	"log"

	"github.com/akarpov87/taskkeep/internal/server"
	"github.com/akarpov87/taskkeep/internal/server/config"
)

func main() {

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("config error: %v", err)
		return
	}

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
