package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/pkg/errors"

	"github.com/liveturb/escalando-agora-api/internal/domain"
	"github.com/liveturb/escalando-agora-api/internal/usecases/dashboard"
	"github.com/liveturb/escalando-agora-api/internal/usecases/insighting"
	"github.com/liveturb/escalando-agora-api/internal/usecases/marketplace"
	"github.com/liveturb/escalando-agora-api/pkg/apiErrors"
	"github.com/liveturb/escalando-agora-api/pkg/log"
	"github.com/liveturb/escalando-agora-api/pkg/metrics"
	"github.com/liveturb/escalando-agora-api/pkg/middleware"
)

type analysisRequest struct {
	Periodo string `json:"periodo"`
}

// GetDashboard compõe a tela de espionagem: status, criativos, gráfico, abas e mídia.
func GetDashboard(service dashboard.Composer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := anuncioID(r)
		if id == 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do anúncio inválido", nil)
			return
		}

		q := r.URL.Query()

		period, err := domain.ParsePeriod(q.Get("periodo"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Período inválido", nil)
			return
		}

		req := dashboard.Request{AnuncioID: id, Period: period}
		if raw := q.Get("creative_id"); raw != "" {
			creativeID, err := strconv.Atoi(raw)
			if err != nil || creativeID <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do criativo inválido", nil)
				return
			}
			req.CreativeID = creativeID
		}

		view, err := service.Dashboard(r.Context(), middleware.SessionFromContext(r.Context()), viewerFrom(r), req)
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao montar dashboard")
			return
		}

		writeJSON(w, http.StatusOK, view)
	})
}

// RunAnalysis executa a análise simulada; só a requisição mais recente do perfil para o anúncio é gravada.
func RunAnalysis(ads marketplace.Marketplace, insighter insighting.Insighter, m *metrics.Metrics) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := anuncioID(r)
		if id == 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do anúncio inválido", nil)
			return
		}

		var body analysisRequest
		if r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
				return
			}
		}
		if body.Periodo == "" {
			body.Periodo = r.URL.Query().Get("periodo")
		}

		period, err := domain.ParsePeriod(body.Periodo)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Período inválido", nil)
			return
		}

		ad, err := ads.Anuncio(r.Context(), middleware.SessionFromContext(r.Context()), id)
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao buscar anúncio")
			return
		}

		analysis, err := insighter.Analyze(r.Context(), viewerFrom(r), ad, period)
		switch {
		case err == nil:
			m.RecordAnalysis("completed")
			writeJSON(w, http.StatusOK, analysis)

		case errors.Is(err, insighting.ErrAnalysisSuperseded):
			m.RecordAnalysis("superseded")
			writeUsecaseError(w, r, err, "")

		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			m.RecordAnalysis("canceled")
			log.ForContext(r.Context()).WithField("anuncio_id", id).Debug("Análise cancelada pelo cliente")

		default:
			m.RecordAnalysis("error")
			writeUsecaseError(w, r, err, "Erro ao analisar anúncio")
		}
	})
}

func GetLatestAnalysis(insighter insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := anuncioID(r)
		if id == 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do anúncio inválido", nil)
			return
		}

		analysis, ok := insighter.Latest(viewerFrom(r), id)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrAnalysisNotFound, "Nenhuma análise concluída para este anúncio", nil)
			return
		}

		writeJSON(w, http.StatusOK, analysis)
	})
}
