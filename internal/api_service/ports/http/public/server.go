package public

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/munraito/asset-web-service/deploy/config"
	mwLogger "github.com/munraito/asset-web-service/internal/api_service/ports/http/public/middleware/logger"
	"github.com/munraito/asset-web-service/internal/entities"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	msgNotFound       = "This route is not found"
	msgCBRUnavailable = "CBR service is unavailable"
	msgDuplicateName  = "Duplicate asset name"
)

type Server struct {
	service Service
}

func NewRouter(service Service) *chi.Mux {
	srv := &Server{service: service}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mwLogger.New())
	r.Use(middleware.Recoverer)
	r.Use(countRequests)

	r.Handle("/metrics", promhttp.Handler())

	r.Get("/cbr/daily", srv.GetDailyRates)
	r.Get("/cbr/key_indicators", srv.GetKeyIndicators)

	r.Get("/api/asset/add/{charCode}/{name}/{capital}/{interest}", srv.AddAsset)
	r.Get("/api/asset/list", srv.ListAssets)
	r.Get("/api/asset/get", srv.GetAssetsByName)
	r.Get("/api/asset/cleanup", srv.Cleanup)
	r.Get("/api/asset/calculate_revenue", srv.CalculateRevenue)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		RespondWithError(w, http.StatusNotFound, msgNotFound)
	})

	return r
}

func StartServer(ctx context.Context, service Service, cfg *config.Config) <-chan struct{} {
	r := NewRouter(service)

	server := &http.Server{
		Addr:         ":" + cfg.HTTPServer.Port,
		Handler:      r,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	doneChan := make(chan struct{})

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Http server error", "error", err)
		}
	}()

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Failed to stop server", "error", err)
		}

		close(doneChan)
	}()

	return doneChan
}

func (s *Server) GetDailyRates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rates, err := s.service.DailyRates(ctx)
	if err != nil {
		slog.Error("Failed to get daily rates", "error", err)
		RespondWithError(w, http.StatusServiceUnavailable, msgCBRUnavailable)
		return
	}

	RespondWithJSON(w, http.StatusOK, rates)
}

func (s *Server) GetKeyIndicators(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rates, err := s.service.KeyIndicators(ctx)
	if err != nil {
		slog.Error("Failed to get key indicators", "error", err)
		RespondWithError(w, http.StatusServiceUnavailable, msgCBRUnavailable)
		return
	}

	RespondWithJSON(w, http.StatusOK, rates)
}

func (s *Server) AddAsset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	charCode := chi.URLParam(r, "charCode")
	name := chi.URLParam(r, "name")

	capital, err := parseAmount(chi.URLParam(r, "capital"))
	if err != nil {
		RespondWithError(w, http.StatusNotFound, msgNotFound)
		return
	}

	interest, err := parseAmount(chi.URLParam(r, "interest"))
	if err != nil {
		RespondWithError(w, http.StatusNotFound, msgNotFound)
		return
	}

	asset, err := s.service.AddAsset(ctx, charCode, name, capital, interest)
	if err != nil {
		if errors.Is(err, entities.ErrDuplicateName) {
			RespondWithError(w, http.StatusForbidden, msgDuplicateName)
			return
		}
		RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	RespondWithText(w, http.StatusOK, "Asset "+asset.Name+" was successfully added")
}

func (s *Server) ListAssets(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, toTuples(s.service.ListAssets(r.Context())))
}

func (s *Server) GetAssetsByName(w http.ResponseWriter, r *http.Request) {
	names := r.URL.Query()["name"]

	RespondWithJSON(w, http.StatusOK, toTuples(s.service.AssetsByName(r.Context(), names)))
}

func (s *Server) Cleanup(w http.ResponseWriter, r *http.Request) {
	s.service.Cleanup(r.Context())

	w.WriteHeader(http.StatusOK)
}

func (s *Server) CalculateRevenue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	periods := r.URL.Query()["period"]

	totals, err := s.service.CalculateRevenue(ctx, periods)
	if err != nil {
		slog.Error("Failed to calculate revenue", "error", err)
		RespondWithError(w, http.StatusServiceUnavailable, msgCBRUnavailable)
		return
	}

	RespondWithJSON(w, http.StatusOK, totals)
}

// amountSegment admits only unsigned plain integer or decimal forms, so a
// signed, exponent or non-finite value in the add path falls through to 404
// the same way it never matched a route in the first place.
var amountSegment = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

func parseAmount(raw string) (float64, error) {
	if !amountSegment.MatchString(raw) {
		return 0, errors.New("not a plain decimal")
	}
	return strconv.ParseFloat(raw, 64)
}

func toTuples(assets []entities.Asset) [][]any {
	tuples := make([][]any, 0, len(assets))
	for _, asset := range assets {
		tuples = append(tuples, asset.Tuple())
	}
	return tuples
}

func RespondWithJSON(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")

	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to encode response", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func RespondWithText(w http.ResponseWriter, code int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)

	if _, err := w.Write([]byte(text)); err != nil {
		slog.Error("Failed to write response", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func RespondWithError(w http.ResponseWriter, code int, message string, details ...string) {
	errorText := message
	if len(details) > 0 {
		errorText += "\nDetails: " + details[0]
	}

	RespondWithText(w, code, errorText)
}
