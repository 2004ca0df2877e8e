package main

import (
	"log"
	"net/http"

	"github.com/nel349/midnight-mobile-connector/internal/api"
	"github.com/nel349/midnight-mobile-connector/internal/config"
)

// @title           Midnight Mobile Connector API
// @version         1.0
// @description     Local shield wallet service: deterministic key derivation, checksummed address encoding and validation, and ledger state queries.
// @BasePath        /
func main() {
	if err := config.Init(); err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := config.PromptForPassword(); err != nil {
		log.Fatalf("password: %v", err)
	}

	router, err := api.SetupRouter()
	if err != nil {
		log.Fatalf("router: %v", err)
	}

	port := config.GetPort()
	log.Printf("listening on :%s (network %s)", port, config.GetNetwork())
	log.Fatal(http.ListenAndServe(":"+port, router))
}
