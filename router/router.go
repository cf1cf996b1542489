package router

import (
	"net/http"

	"github.com/george-593/microsoft-bank-website/config"
	"github.com/george-593/microsoft-bank-website/handler"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// NewRouter mounts the API under the configured root and wraps everything in
// a credential-less CORS layer restricted to the configured origin. Preflight
// OPTIONS requests are answered by the CORS layer itself.
func NewRouter(accountHandler *handler.AccountHandler, transactionHandler *handler.TransactionHandler) http.Handler {
	api := http.NewServeMux()

	api.HandleFunc("GET /{$}", handler.Banner)

	api.Handle("POST /accounts", handler.ErrorHandlingMiddleware(accountHandler.CreateAccount))
	api.Handle("GET /accounts/{username}", handler.ErrorHandlingMiddleware(accountHandler.GetAccount))
	api.Handle("PUT /accounts/{username}", handler.ErrorHandlingMiddleware(accountHandler.UpdateAccount))
	api.Handle("DELETE /accounts/{username}", handler.ErrorHandlingMiddleware(accountHandler.DeleteAccount))

	api.Handle("GET /accounts/{username}/transactions", handler.ErrorHandlingMiddleware(transactionHandler.ListTransactions))
	api.Handle("GET /accounts/{username}/transactions/{id}", handler.ErrorHandlingMiddleware(transactionHandler.GetTransaction))
	api.Handle("POST /accounts/{username}/transactions", handler.ErrorHandlingMiddleware(transactionHandler.CreateTransaction))

	root := config.AppConfig.API.Root

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("/swagger/", httpSwagger.WrapHandler)
	mux.HandleFunc("GET "+root, handler.Banner)
	mux.Handle(root+"/", http.StripPrefix(root, api))

	c := cors.New(cors.Options{
		AllowedOrigins: []string{config.AppConfig.CORS.AllowedOrigin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	return c.Handler(mux)
}
