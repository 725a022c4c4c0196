package handler

import (
	"net/http"

	"github.com/liveturb/escalando-agora-api/internal/domain"
	"github.com/liveturb/escalando-agora-api/internal/usecases/thumbnailing"
)

// GetThumbnail nunca falha: qualquer problema na extração devolve o placeholder.
func GetThumbnail(service thumbnailing.Thumbnailer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		thumb := service.Thumbnail(r.Context(), thumbnailing.ThumbnailRequest{
			MediaURL:  q.Get("url"),
			Thumbnail: q.Get("thumbnail"),
		})

		if thumb.Source != domain.ThumbnailPlaceholder {
			w.Header().Set("Cache-Control", "private, max-age=3600")
		}
		writeJSON(w, http.StatusOK, thumb)
	})
}
