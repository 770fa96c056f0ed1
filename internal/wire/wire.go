package wire

import (
	"context"
	"net/http"
	"time"

	"rental-booking/internal/adaptor"
	"rental-booking/internal/data/repository"
	"rental-booking/internal/reservation"
	"rental-booking/internal/usecase"
	"rental-booking/pkg/metrics"
	"rental-booking/pkg/middleware"
	"rental-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router *chi.Mux
}

// Probe is a named dependency check run by /health.
type Probe struct {
	Name  string
	Check func(ctx context.Context) error
}

// Wiring menginisialisasi semua dependencies
func Wiring(
	repo *repository.Repository,
	config *utils.Config,
	clock reservation.Clock,
	logger *zap.Logger,
	probes ...Probe,
) *App {
	metrics.Register()

	// Initialize services dan handlers
	service := usecase.NewService(repo, config, clock, logger)
	handler := adaptor.NewHandler(service, logger)

	// Setup router
	router := setupRouter(handler, repo, config, logger, probes)

	return &App{
		Router: router,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
	probes []Probe,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.HTTP.CORSAllowedOrigins))

	// Operational endpoints stay outside the rate limit
	r.Get("/health", healthHandler(probes, logger))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RateLimit(config.HTTP.RateLimitRPS, config.HTTP.RateLimitBurst, logger))

		auth := middleware.Auth(repo.Session, config.JWT, logger)

		// Apply routes
		wireAuth(r, handler.Auth, handler.User, auth)
		wireUnit(r, handler.Unit, auth)
		wireBooking(r, handler.Booking, auth)
	})

	return r
}

func healthHandler(probes []Probe, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := map[string]string{}
		healthy := true
		for _, p := range probes {
			if err := p.Check(ctx); err != nil {
				logger.Warn("Health check failed", zap.String("probe", p.Name), zap.Error(err))
				status[p.Name] = "down"
				healthy = false
				continue
			}
			status[p.Name] = "up"
		}

		if !healthy {
			utils.ResponseJSON(w, http.StatusServiceUnavailable, false, "Unhealthy", status, nil)
			return
		}
		utils.ResponseSuccess(w, "OK", status)
	}
}
