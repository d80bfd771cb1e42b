package dailyclaim

import (
	"log/slog"

	httpadapter "todaybanner/contexts/banner/daily-claim/adapters/http"
	"todaybanner/contexts/banner/daily-claim/adapters/memory"
	"todaybanner/contexts/banner/daily-claim/application/commands"
	"todaybanner/contexts/banner/daily-claim/application/queries"
	"todaybanner/contexts/banner/daily-claim/domain/services"
	"todaybanner/contexts/banner/daily-claim/ports"
)

// Module is the composition surface for the daily banner claim service.
// Runtime wiring should consume Handler; Store is exposed for tests and
// inspection when the in-memory path is used.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Store         ports.ClaimStore
	Days          services.DayKeyResolver
	Clock         ports.Clock
	MaxTextLength int
	Logger        *slog.Logger
}

// NewModule wires the claim arbitration use cases against explicit ports. The
// store handle is constructed once by the caller and held for the module's
// lifetime; nothing is lazily re-created per request.
func NewModule(deps Dependencies) Module {
	getState := queries.GetStateUseCase{
		Store:  deps.Store,
		Days:   deps.Days,
		Clock:  deps.Clock,
		Logger: deps.Logger,
	}
	claimBanner := commands.ClaimBannerUseCase{
		Store:         deps.Store,
		Days:          deps.Days,
		Clock:         deps.Clock,
		MaxTextLength: deps.MaxTextLength,
		Logger:        deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			GetState:    getState,
			ClaimBanner: claimBanner,
			Logger:      deps.Logger,
		},
	}
}

// NewInMemoryModule wires the use cases against the in-memory adapter, which
// also serves as the module clock.
func NewInMemoryModule(timezone string, maxTextLength int, logger *slog.Logger) (Module, error) {
	days, err := services.NewDayKeyResolver(timezone)
	if err != nil {
		return Module{}, err
	}

	store := memory.NewStore(logger)
	module := NewModule(Dependencies{
		Store:         store,
		Days:          days,
		Clock:         store,
		MaxTextLength: maxTextLength,
		Logger:        logger,
	})
	module.Store = store
	return module, nil
}
