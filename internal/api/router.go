package api

import (
	"net/http"

	_ "github.com/nel349/midnight-mobile-connector/docs"
	"github.com/nel349/midnight-mobile-connector/internal/handler"

	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter sets up router with handlers
func SetupRouter() (http.Handler, error) {
	shieldHandler, err := handler.NewShieldHandler()
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Shield wallet endpoints
	mux.HandleFunc("/shield/generate", shieldHandler.Generate)
	mux.HandleFunc("/shield/restore", shieldHandler.Restore)
	mux.HandleFunc("/shield/addresses", shieldHandler.Addresses)
	mux.HandleFunc("/shield/validate", shieldHandler.Validate)
	mux.HandleFunc("/shield/contract-state", shieldHandler.ContractState)

	return mux, nil
}
