// Package main is the entry point for A Visit from El Chupacabras.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/samdwyer/chupacabra/internal/game"
	"github.com/samdwyer/chupacabra/internal/telemetry"
	"github.com/samdwyer/chupacabra/internal/ui"
)

const settingsPath = "chupacabra.ini"

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_CHUPACABRA_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg := game.LoadConfig(settingsPath)
	ctx := context.Background()

	if cfg.TelemetryEnabled {
		// Set up OTEL environment variables from our .env variables
		setupOTelEnv()

		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Game will run without observability")
			// Continue without telemetry - game still works
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	// One console for the whole process; sessions and the replay prompt
	// share the same buffered stdin.
	console := ui.NewConsole(os.Stdin, os.Stdout)
	if !console.Interactive() {
		log.Printf("Note: stdin is not a terminal, reading commands headless")
	}

	for {
		g, err := game.New(cfg, console)
		if err != nil {
			log.Fatalf("Failed to initialize game: %v", err)
		}

		g.Run(ctx)

		answer, err := console.ReadLine(game.PlayAgainPrompt + "\n")
		if err != nil || !strings.EqualFold(strings.TrimSpace(answer), "y") {
			console.Println(game.FarewellMessage)
			return
		}
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Always set headers from our API key - the .env file may have an unexpanded
	// variable reference that doesn't work, so we construct it properly here
	apiKey := os.Getenv("HONEYCOMB_CHUPACABRA_API_KEY")
	dataset := os.Getenv("HONEYCOMB_CHUPACABRA_DATASET")
	if dataset == "" {
		dataset = "chupacabra" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
