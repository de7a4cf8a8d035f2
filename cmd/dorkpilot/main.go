package main

import (
	"log"

	"github.com/dorkpilot/dorkpilot/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ dorkpilot failed to start: %v", err)
	}
}
