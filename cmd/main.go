package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/ovenline/bakehouse-backend/internal/app"
)

func main() {
	// Missing .env is fine in containerized deployments where the
	// environment comes from the orchestrator.
	_ = godotenv.Load()

	a, err := app.New()
	if err != nil {
		fmt.Printf("Failed to init app: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	a.Start()

	addr := ":" + a.Cfg.Port
	a.Log.Info("Server listening", "addr", addr)
	if err := a.Run(addr); err != nil {
		a.Log.Error("Server failed", "error", err)
	}
}
