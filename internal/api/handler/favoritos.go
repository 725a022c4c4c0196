package handler

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/liveturb/escalando-agora-api/internal/usecases/favoriting"
	"github.com/liveturb/escalando-agora-api/pkg/apiErrors"
	"github.com/liveturb/escalando-agora-api/pkg/log"
	"github.com/liveturb/escalando-agora-api/pkg/metrics"
)

type favoriteResponse struct {
	AnuncioID int  `json:"anuncio_id"`
	Favorito  bool `json:"favorito"`
}

type importRequest struct {
	Favoritos []int `json:"favoritos"`
}

func ListFavoritos(service favoriting.Favoriter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids, err := service.List(r.Context(), viewerFrom(r))
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao listar favoritos")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"favoritos": ids})
	})
}

// ToggleFavorito inverte a marcação do anúncio e devolve o novo estado.
func ToggleFavorito(service favoriting.Favoriter, m *metrics.Metrics) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := anuncioID(r)
		if id == 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do anúncio inválido", nil)
			return
		}

		favorite, err := service.Toggle(r.Context(), viewerFrom(r), id)
		if err != nil {
			if errors.Is(err, favoriting.ErrMissingViewer) || errors.Is(err, favoriting.ErrInvalidAdID) {
				writeUsecaseError(w, r, err, "")
				return
			}
			log.ForContext(r.Context()).WithError(err).WithField("anuncio_id", id).Error("Erro ao alternar favorito")
			apiErrors.WriteError(w, apiErrors.ErrFavoriteOperation, "Erro ao salvar favorito", nil)
			return
		}

		m.RecordFavoriteToggle(favorite)
		writeJSON(w, http.StatusOK, favoriteResponse{AnuncioID: id, Favorito: favorite})
	})
}

func GetFavorito(service favoriting.Favoriter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := anuncioID(r)
		if id == 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do anúncio inválido", nil)
			return
		}

		favorite, err := service.IsFavorite(r.Context(), viewerFrom(r), id)
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao consultar favorito")
			return
		}

		writeJSON(w, http.StatusOK, favoriteResponse{AnuncioID: id, Favorito: favorite})
	})
}

// ImportFavoritos recebe a lista exportada do navegador e mescla com a já salva.
func ImportFavoritos(service favoriting.Favoriter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body importRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		imported, err := service.Import(r.Context(), viewerFrom(r), body.Favoritos)
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao importar favoritos")
			return
		}

		writeJSON(w, http.StatusOK, map[string]int{"importados": imported})
	})
}
