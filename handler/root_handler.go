package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/george-593/microsoft-bank-website/config"
)

// Banner godoc
// @Summary      Service banner
// @Description  Returns the service description and version as plain text.
// @Tags         meta
// @Produce      plain
// @Success      200  {string}  string
// @Router       /api/ [get]
func Banner(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "%s v%s", config.AppConfig.App.Description, config.AppConfig.App.Version)
}

// HealthCheck godoc
// @Summary      Show the status of server
// @Description  get the status of server
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "API is healthy and running"})
}
