package main

import (
	"log"
	"net/http"
	"os"

	"agenda-api/internal/config"
	"agenda-api/internal/http/router"
	"agenda-api/internal/security"
	"agenda-api/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config/app.yaml")
	if err != nil {
		log.Printf("Failed to load config: %v, using defaults", err)
		cfg = &config.Config{
			Port: "8080",
		}
	}

	// Event store
	storeOpts := store.Options{}
	if cfg.DataFile != "" {
		storeOpts.Candidates = []string{cfg.DataFile}
	}
	eventStore := store.New(storeOpts)

	// Operator credential resolver
	resolverOpts := security.ResolverOptions{}
	if cfg.OperatorFile != "" {
		resolverOpts.Candidates = []string{cfg.OperatorFile}
	}
	resolver := security.NewResolver(resolverOpts)

	// Setup router
	r := router.Setup(eventStore, resolver)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Printf("Starting server on port %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
