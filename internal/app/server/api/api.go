// Checkpoint transit registry API.
//
// GET  /api/v1/health              # Liveness probe
// GET  /api/v1/records             # List records, newest first
// POST /api/v1/records             # Register an entry event
// GET  /api/v1/records/{id}        # Get one record
// POST /api/v1/records/{id}/exit   # Stamp the exit time (once)
// GET  /api/v1/records/export      # Download the registry as xlsx

package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	healthAPI "gatepost/internal/app/server/api/http/health"
	"gatepost/internal/app/server/api/http/middleware"
	"gatepost/internal/app/server/api/http/middleware/logger"
	transitAPI "gatepost/internal/app/server/api/http/transit"
	"gatepost/internal/domain/transit"
	"gatepost/internal/infrastructure/storage/postgres"
)

type Handlers struct {
	Health  *healthAPI.Handler
	Transit *transitAPI.Handler
}

// New builds a *chi.Mux with every operation registered through huma.Register.
func New(storage *postgres.Storage, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("Gatepost API", "1.0.0")

	API := humachi.New(mux, config)

	h := handlers(storage, log)
	h.Health.SetupRoutes(API)
	h.Transit.SetupRoutes(API)

	return mux
}

func handlers(storage *postgres.Storage, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	transitRepo := postgres.NewTransitRepository(storage.Pool(), log)
	transitService := transit.NewService(transitRepo, log)
	middlewares.Add(loggerMW.Middleware())
	transitHandler := transitAPI.NewHandler(transitService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:  healthHandler,
		Transit: transitHandler,
	}
}
