package handler

import (
	"net/http"

	"github.com/liveturb/escalando-agora-api/internal/config"
)

type frontendConfig struct {
	BackendURL   string `json:"backend_url"`
	FBPixelID    string `json:"fb_pixel_id,omitempty"`
	AppURL       string `json:"app_url"`
	LoginURL     string `json:"login_url"`
	ItemsPerPage int    `json:"items_per_page"`
}

// FrontendConfig expõe as variáveis NEXT_PUBLIC_* que o navegador precisa conhecer.
func FrontendConfig(cfg *config.Config) http.Handler {
	body := frontendConfig{
		BackendURL:   cfg.Backend.URL,
		FBPixelID:    cfg.Frontend.FBPixelID,
		AppURL:       cfg.Frontend.AppURL,
		LoginURL:     cfg.Frontend.LoginURL,
		ItemsPerPage: cfg.Marketplace.ItemsPerPage,
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=300")
		writeJSON(w, http.StatusOK, body)
	})
}
