package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/liveturb/escalando-agora-api/infrastructure/integrator/laravel"
	laraveldomain "github.com/liveturb/escalando-agora-api/infrastructure/integrator/laravel/domain"
	"github.com/liveturb/escalando-agora-api/internal/api/handler/router"
	"github.com/liveturb/escalando-agora-api/internal/config"
	"github.com/liveturb/escalando-agora-api/internal/domain"
	"github.com/liveturb/escalando-agora-api/internal/usecases/dashboard"
	dashboardmocks "github.com/liveturb/escalando-agora-api/internal/usecases/dashboard/mocks"
	favoritingmocks "github.com/liveturb/escalando-agora-api/internal/usecases/favoriting/mocks"
	"github.com/liveturb/escalando-agora-api/internal/usecases/insighting"
	insightingmocks "github.com/liveturb/escalando-agora-api/internal/usecases/insighting/mocks"
	"github.com/liveturb/escalando-agora-api/internal/usecases/marketplace"
	marketplacemocks "github.com/liveturb/escalando-agora-api/internal/usecases/marketplace/mocks"
	"github.com/liveturb/escalando-agora-api/internal/usecases/thumbnailing"
	thumbnailingmocks "github.com/liveturb/escalando-agora-api/internal/usecases/thumbnailing/mocks"
	"github.com/liveturb/escalando-agora-api/pkg/apiErrors"
	"github.com/liveturb/escalando-agora-api/pkg/metrics"
	"github.com/liveturb/escalando-agora-api/pkg/middleware"
)

const testLoginURL = "https://liveturb.com/login?redirect_to=x"

var testSession = laraveldomain.Session{XSRFToken: "xsrf"}

type fixture struct {
	market    *marketplacemocks.MockMarketplace
	composer  *dashboardmocks.MockComposer
	insighter *insightingmocks.MockInsighter
	favorites *favoritingmocks.MockFavoriter
	thumbs    *thumbnailingmocks.MockThumbnailer
	cron      *fakeCron
	metrics   *metrics.Metrics
	handler   http.Handler
}

type fakeCron struct {
	triggered int
}

func (f *fakeCron) TriggerManualSync() { f.triggered++ }
func (f *fakeCron) GetStatus() map[string]any {
	return map[string]any{"runs": f.triggered}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		market:    marketplacemocks.NewMockMarketplace(ctrl),
		composer:  dashboardmocks.NewMockComposer(ctrl),
		insighter: insightingmocks.NewMockInsighter(ctrl),
		favorites: favoritingmocks.NewMockFavoriter(ctrl),
		thumbs:    thumbnailingmocks.NewMockThumbnailer(ctrl),
		cron:      &fakeCron{},
		metrics:   metrics.NewWithRegistry(prometheus.NewRegistry()),
	}

	cfg := &config.Config{
		Backend:     config.Backend{URL: "https://liveturb.com"},
		Frontend:    config.Frontend{FBPixelID: "123", AppURL: "https://app.liveturb.com", LoginURL: "https://liveturb.com/login"},
		Marketplace: config.Marketplace{ItemsPerPage: 12},
	}

	rt := router.New(
		router.WithRoutes(Healthcheck(nil)...),
		router.WithRoutes(Frontend(cfg)...),
		router.WithRoutes(Anuncios(f.market)...),
		router.WithRoutes(Dashboard(f.composer, f.market, f.insighter, f.metrics)...),
		router.WithRoutes(Favoritos(f.favorites, f.metrics)...),
		router.WithRoutes(Thumbnails(f.thumbs)...),
		router.WithRoutes(CronJobs(CronJobServices{CatalogRefreshService: f.cron}, "cron-secret")...),
	)

	// simula o AuthMiddleware: requisições com X-Test-User chegam autenticadas
	f.handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Test-User") != "" {
			ctx := middleware.WithIdentity(r.Context(), &domain.Claims{UserID: 42, UserName: "Maria"}, testSession)
			ctx = context.WithValue(ctx, middleware.ContextKeyLoginURL, testLoginURL)
			r = r.WithContext(ctx)
		}
		rt.ServeHTTP(w, r)
	})

	return f
}

func (f *fixture) do(t *testing.T, method, target, body string, authenticated bool) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if authenticated {
		req.Header.Set("X-Test-User", "1")
	}

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body apiErrors.APIError
	decode(t, rec, &body)
	return body.Code
}

func TestListAnuncios(t *testing.T) {
	f := newFixture(t)

	want := domain.ListFilters{Page: 2, PerPage: 6, Busca: "emagrecer", Nicho: "saude", Categoria: "escalando", OnlyFavorites: true}
	f.market.EXPECT().List(gomock.Any(), testSession, "42", want).Return(&domain.AnunciosPage{
		Data: []domain.Anuncio{{ID: 1, Titulo: "Oferta"}},
		Meta: domain.PageMeta{Total: 7, CurrentPage: 2, LastPage: 2, PerPage: 6},
	}, nil)

	rec := f.do(t, http.MethodGet, "/v1/anuncios?page=2&per_page=6&busca=+emagrecer+&nicho=saude&categoria=escalando&favoritos=true", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var page domain.AnunciosPage
	decode(t, rec, &page)
	require.Len(t, page.Data, 1)
	assert.Equal(t, 2, page.Meta.CurrentPage)
}

func TestListAnuncios_errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		auth       bool
		listErr    error
		wantStatus int
		wantCode   string
	}{
		{name: "sem sessão", target: "/v1/anuncios", wantStatus: http.StatusUnauthorized, wantCode: apiErrors.ErrUnauthenticated},
		{name: "página inválida", target: "/v1/anuncios?page=dois", auth: true, wantStatus: http.StatusBadRequest, wantCode: apiErrors.ErrInvalidFormat},
		{name: "favoritos inválido", target: "/v1/anuncios?favoritos=talvez", auth: true, wantStatus: http.StatusBadRequest, wantCode: apiErrors.ErrInvalidFormat},
		{name: "sessão recusada pela api", target: "/v1/anuncios", auth: true, listErr: errors.Wrap(laravel.ErrUnauthenticated, "401"), wantStatus: http.StatusUnauthorized, wantCode: apiErrors.ErrUnauthenticated},
		{name: "api laravel fora do ar", target: "/v1/anuncios", auth: true, listErr: &laraveldomain.APIError{Endpoint: "anuncios", Status: 500}, wantStatus: http.StatusBadGateway, wantCode: apiErrors.ErrExternalService},
		{name: "erro inesperado", target: "/v1/anuncios", auth: true, listErr: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: apiErrors.ErrInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.listErr != nil {
				f.market.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tt.listErr)
			}

			rec := f.do(t, http.MethodGet, tt.target, "", tt.auth)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, errorCode(t, rec))
		})
	}
}

func TestListAnuncios_unauthenticatedCarriesLoginURL(t *testing.T) {
	f := newFixture(t)
	f.market.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, laravel.ErrUnauthenticated)

	rec := f.do(t, http.MethodGet, "/v1/anuncios", "", true)

	var body struct {
		Details map[string]string `json:"details"`
	}
	decode(t, rec, &body)
	assert.Equal(t, testLoginURL, body.Details["login_url"])
}

func TestFeed(t *testing.T) {
	t.Run("próxima página", func(t *testing.T) {
		f := newFixture(t)
		f.market.EXPECT().NextPage(gomock.Any(), testSession, "42", domain.ListFilters{Nicho: "saude"}).
			Return(&marketplace.FeedPage{Data: []domain.Anuncio{{ID: 3}}, HasMore: true, NextPage: 2}, nil)

		rec := f.do(t, http.MethodPost, "/v1/feed/next?nicho=saude", "", true)
		require.Equal(t, http.StatusOK, rec.Code)

		var page marketplace.FeedPage
		decode(t, rec, &page)
		assert.True(t, page.HasMore)
		assert.Equal(t, 2, page.NextPage)
	})

	t.Run("carregamento em andamento", func(t *testing.T) {
		f := newFixture(t)
		f.market.EXPECT().NextPage(gomock.Any(), gomock.Any(), "42", gomock.Any()).Return(nil, marketplace.ErrLoadInProgress)

		rec := f.do(t, http.MethodPost, "/v1/feed/next", "", true)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, apiErrors.ErrLoadInProgress, errorCode(t, rec))
	})

	t.Run("reset", func(t *testing.T) {
		f := newFixture(t)
		f.market.EXPECT().ResetFeed("42")

		rec := f.do(t, http.MethodPost, "/v1/feed/reset", "", true)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestGetAnuncio(t *testing.T) {
	f := newFixture(t)

	f.market.EXPECT().Anuncio(gomock.Any(), testSession, 7).Return(&domain.Anuncio{ID: 7, Titulo: "Oferta"}, nil)
	rec := f.do(t, http.MethodGet, "/v1/anuncios/7", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	var ad domain.Anuncio
	decode(t, rec, &ad)
	assert.Equal(t, "Oferta", ad.Titulo)

	f.market.EXPECT().Anuncio(gomock.Any(), testSession, 8).Return(nil, errors.Wrap(laravel.ErrNotFound, "404"))
	rec = f.do(t, http.MethodGet, "/v1/anuncios/8", "", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrAdNotFound, errorCode(t, rec))

	rec = f.do(t, http.MethodGet, "/v1/anuncios/abc", "", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLookups(t *testing.T) {
	f := newFixture(t)

	f.market.EXPECT().Categorias(gomock.Any(), testSession).Return(marketplace.DefaultCategorias())
	rec := f.do(t, http.MethodGet, "/v1/categorias", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	var categorias struct {
		Data []domain.Categoria `json:"data"`
	}
	decode(t, rec, &categorias)
	assert.Len(t, categorias.Data, 3)

	f.market.EXPECT().Nichos(gomock.Any(), testSession).Return(marketplace.DefaultNichos())
	rec = f.do(t, http.MethodGet, "/v1/nichos", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	var nichos struct {
		Data []domain.Nicho `json:"data"`
	}
	decode(t, rec, &nichos)
	assert.Len(t, nichos.Data, 4)
}

func TestGetDashboard(t *testing.T) {
	f := newFixture(t)

	f.composer.EXPECT().Dashboard(gomock.Any(), testSession, "42", dashboard.Request{AnuncioID: 7, Period: domain.Period15Days, CreativeID: 11}).
		Return(&dashboard.View{
			Anuncio:     &domain.Anuncio{ID: 7},
			Status:      domain.StatusInfo{Status: domain.StatusSuperScaled, Color: domain.ColorGreen, Hot: true},
			MinAnuncios: 40,
			Media:       dashboard.Media{Error: dashboard.MediaUnavailable},
		}, nil)

	rec := f.do(t, http.MethodGet, "/v1/anuncios/7/dashboard?periodo=15dias&creative_id=11", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	var view map[string]any
	decode(t, rec, &view)
	assert.Equal(t, float64(40), view["min_anuncios"])
	assert.Equal(t, true, view["status"].(map[string]any)["hot"])
	assert.Equal(t, dashboard.MediaUnavailable, view["media"].(map[string]any)["media_error"])
}

func TestGetDashboard_errors(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/v1/anuncios/7/dashboard?periodo=90dias", "", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodGet, "/v1/anuncios/7/dashboard?creative_id=x", "", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	f.composer.EXPECT().Dashboard(gomock.Any(), gomock.Any(), "42", gomock.Any()).Return(nil, dashboard.ErrCreativeNotFound)
	rec = f.do(t, http.MethodGet, "/v1/anuncios/7/dashboard?creative_id=99", "", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrCreativeNotFound, errorCode(t, rec))
}

func TestRunAnalysis(t *testing.T) {
	ad := &domain.Anuncio{ID: 7}

	t.Run("concluída", func(t *testing.T) {
		f := newFixture(t)
		f.market.EXPECT().Anuncio(gomock.Any(), testSession, 7).Return(ad, nil)
		f.insighter.EXPECT().Analyze(gomock.Any(), "42", ad, domain.Period30Days).
			Return(&domain.Analysis{AnuncioID: 7, Period: domain.Period30Days, Potential: 80, Trend: domain.TrendRising}, nil)

		rec := f.do(t, http.MethodPost, "/v1/anuncios/7/analysis", `{"periodo":"30dias"}`, true)
		require.Equal(t, http.StatusOK, rec.Code)

		var analysis domain.Analysis
		decode(t, rec, &analysis)
		assert.Equal(t, 80, analysis.Potential)
		assert.Equal(t, float64(1), testutil.ToFloat64(f.metrics.AnalysesTotal.WithLabelValues("completed")))
	})

	t.Run("substituída", func(t *testing.T) {
		f := newFixture(t)
		f.market.EXPECT().Anuncio(gomock.Any(), gomock.Any(), 7).Return(ad, nil)
		f.insighter.EXPECT().Analyze(gomock.Any(), "42", ad, domain.Period7Days).Return(nil, insighting.ErrAnalysisSuperseded)

		rec := f.do(t, http.MethodPost, "/v1/anuncios/7/analysis", "", true)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, apiErrors.ErrAnalysisSuperseded, errorCode(t, rec))
		assert.Equal(t, float64(1), testutil.ToFloat64(f.metrics.AnalysesTotal.WithLabelValues("superseded")))
	})

	t.Run("período inválido", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(t, http.MethodPost, "/v1/anuncios/7/analysis", `{"periodo":"1ano"}`, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("corpo inválido", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(t, http.MethodPost, "/v1/anuncios/7/analysis", `{`, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, errorCode(t, rec))
	})
}

func TestGetLatestAnalysis(t *testing.T) {
	f := newFixture(t)

	f.insighter.EXPECT().Latest("42", 7).Return(nil, false)
	rec := f.do(t, http.MethodGet, "/v1/anuncios/7/analysis", "", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrAnalysisNotFound, errorCode(t, rec))

	f.insighter.EXPECT().Latest("42", 7).Return(&domain.Analysis{AnuncioID: 7, Potential: 65}, true)
	rec = f.do(t, http.MethodGet, "/v1/anuncios/7/analysis", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestFavoritos(t *testing.T) {
	t.Run("alternar", func(t *testing.T) {
		f := newFixture(t)
		f.favorites.EXPECT().Toggle(gomock.Any(), "42", 15).Return(true, nil)

		rec := f.do(t, http.MethodPost, "/v1/favoritos/15/toggle", "", true)
		require.Equal(t, http.StatusOK, rec.Code)

		var body favoriteResponse
		decode(t, rec, &body)
		assert.Equal(t, favoriteResponse{AnuncioID: 15, Favorito: true}, body)
		assert.Equal(t, float64(1), testutil.ToFloat64(f.metrics.FavoriteToggles.WithLabelValues("added")))
	})

	t.Run("falha ao gravar", func(t *testing.T) {
		f := newFixture(t)
		f.favorites.EXPECT().Toggle(gomock.Any(), "42", 15).Return(false, errors.New("redis fora"))

		rec := f.do(t, http.MethodPost, "/v1/favoritos/15/toggle", "", true)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, apiErrors.ErrFavoriteOperation, errorCode(t, rec))
	})

	t.Run("listar e consultar", func(t *testing.T) {
		f := newFixture(t)
		f.favorites.EXPECT().List(gomock.Any(), "42").Return([]int{3, 15}, nil)
		f.favorites.EXPECT().IsFavorite(gomock.Any(), "42", 3).Return(true, nil)

		rec := f.do(t, http.MethodGet, "/v1/favoritos", "", true)
		require.Equal(t, http.StatusOK, rec.Code)
		var list struct {
			Favoritos []int `json:"favoritos"`
		}
		decode(t, rec, &list)
		assert.Equal(t, []int{3, 15}, list.Favoritos)

		rec = f.do(t, http.MethodGet, "/v1/favoritos/3", "", true)
		require.Equal(t, http.StatusOK, rec.Code)
		var one favoriteResponse
		decode(t, rec, &one)
		assert.True(t, one.Favorito)
	})

	t.Run("importar", func(t *testing.T) {
		f := newFixture(t)
		f.favorites.EXPECT().Import(gomock.Any(), "42", []int{1, 2, 3}).Return(3, nil)

		rec := f.do(t, http.MethodPost, "/v1/favoritos", `{"favoritos":[1,2,3]}`, true)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"importados":3}`, rec.Body.String())
	})
}

func TestClassify(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/v1/classify", `{"ad_count":45,"days_since_creation":10}`, true)
	require.Equal(t, http.StatusOK, rec.Code)

	var info domain.StatusInfo
	decode(t, rec, &info)
	assert.Equal(t, domain.StatusSuperScaled, info.Status)
	assert.True(t, info.Hot)

	rec = f.do(t, http.MethodPost, "/v1/classify", `nope`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetThumbnail(t *testing.T) {
	f := newFixture(t)

	f.thumbs.EXPECT().Thumbnail(gomock.Any(), thumbnailing.ThumbnailRequest{MediaURL: "https://cdn.example.com/v.mp4"}).
		Return(domain.Thumbnail{URL: "data:image/jpeg;base64,xyz", Source: domain.ThumbnailFrame})

	rec := f.do(t, http.MethodGet, "/v1/thumbnails?url=https%3A%2F%2Fcdn.example.com%2Fv.mp4", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Cache-Control"))

	f.thumbs.EXPECT().Thumbnail(gomock.Any(), gomock.Any()).Return(domain.Thumbnail{URL: "/placeholder.jpg", Source: domain.ThumbnailPlaceholder})
	rec = f.do(t, http.MethodGet, "/v1/thumbnails", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Cache-Control"))
}

func TestFrontendConfigAndMe(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/v1/config", "", false)
	require.Equal(t, http.StatusOK, rec.Code)

	var cfg frontendConfig
	decode(t, rec, &cfg)
	assert.Equal(t, "https://liveturb.com", cfg.BackendURL)
	assert.Equal(t, "123", cfg.FBPixelID)
	assert.Equal(t, 12, cfg.ItemsPerPage)

	rec = f.do(t, http.MethodGet, "/v1/me", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	var user domain.User
	decode(t, rec, &user)
	assert.Equal(t, 42, user.ID)
	assert.Equal(t, "Maria", user.Name)

	rec = f.do(t, http.MethodGet, "/v1/me", "", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCronJobs(t *testing.T) {
	f := newFixture(t)

	run := func(target, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, target, nil)
		req.Header.Set(middleware.CronTokenHeader, token)
		rec := httptest.NewRecorder()
		f.handler.ServeHTTP(rec, req)
		return rec
	}

	rec := run("/v1/cron/catalog/run", "cron-secret")
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 1, f.cron.triggered)

	rec = run("/v1/cron/all/run", "cron-secret")
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 2, f.cron.triggered)

	rec = run("/v1/cron/meta/run", "cron-secret")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = run("/v1/cron/catalog/run", "errado")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, 2, f.cron.triggered)

	req := httptest.NewRequest(http.MethodGet, "/v1/cron/all/status", nil)
	req.Header.Set(middleware.CronTokenHeader, "cron-secret")
	rec = httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"catalog":{"runs":2}}`, rec.Body.String())
}

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(context.Context) error { return p.err }

func TestHealthcheck(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodGet, "/healthcheck", "", false)
	require.Equal(t, http.StatusOK, rec.Code)

	var body healthcheckResponse
	decode(t, rec, &body)
	assert.Equal(t, "ok", body.Status)
	assert.NotEmpty(t, body.Timestamp)
	assert.Empty(t, body.Checks)
}

func TestHealthcheck_dependencies(t *testing.T) {
	rt := router.New(router.WithRoutes(Healthcheck(map[string]Pinger{
		"redis":    fakePinger{},
		"postgres": fakePinger{err: errors.New("connection refused")},
	})...))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body healthcheckResponse
	decode(t, rec, &body)
	assert.Equal(t, "degraded", body.Status)
	assert.Equal(t, map[string]string{"redis": "up", "postgres": "down"}, body.Checks)
}

func TestRouter_unknownRoutes(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/v1/desconhecida", "", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrNotFound, errorCode(t, rec))

	rec = f.do(t, http.MethodDelete, "/v1/favoritos", "", true)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, apiErrors.ErrMethodNotAllowed, errorCode(t, rec))
}
