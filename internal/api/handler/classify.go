package handler

import (
	"net/http"

	"github.com/liveturb/escalando-agora-api/internal/usecases/classifying"
	"github.com/liveturb/escalando-agora-api/pkg/apiErrors"
)

// Classify expõe a tabela de status para telas que montam os sinais por conta própria.
func Classify() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in classifying.ClassifierInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		writeJSON(w, http.StatusOK, classifying.Classify(in))
	})
}
