package main

import (
	"log"

	"github.com/andreyxaxa/Image-Gallery/config"
	"github.com/andreyxaxa/Image-Gallery/internal/app"
)

func main() {
	// Config
	cfg, err := config.NewNotifier()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}

	// Run
	app.RunNotifier(cfg)
}
