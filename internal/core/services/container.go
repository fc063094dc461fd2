package services

import (
	"context"
	"log/slog"

	portsprov "github.com/SscSPs/currency_converter_app/internal/core/ports/providers"
	portsrepo "github.com/SscSPs/currency_converter_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_converter_app/internal/core/ports/services"
)

// ContainerDeps carries everything the service container needs: the
// repository provider, the external collaborators and the base logger.
type ContainerDeps struct {
	Repos        *portsrepo.RepositoryProvider
	RateProvider portsprov.RateProvider
	Alerter      portsprov.Alerter
	AlertReader  portssvc.AlertReaderSvc
	BaseCurrency string
	Logger       *slog.Logger
}

// NewContainer creates a new service container with properly initialized
// dependencies. The history is rehydrated from the store here; the rate
// table is NOT fetched. The caller triggers the initial Refresh so the
// form's disabled phase stays observable.
func NewContainer(ctx context.Context, deps ContainerDeps) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.History = NewHistoryService(ctx, deps.Repos.HistoryRepo, deps.Repos.PreferenceRepo, deps.Logger)
	container.Statistics = NewStatisticsService()
	container.Rates = NewRateService(deps.RateProvider, deps.Alerter, deps.BaseCurrency, deps.Logger)
	container.Converter = NewConverterService(container.Rates, container.History, deps.Logger)
	container.Alerts = deps.AlertReader

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.HistorySvcFacade   = (*HistoryService)(nil)
	_ portssvc.StatisticsSvc      = (*StatisticsService)(nil)
	_ portssvc.RateSvcFacade      = (*RateService)(nil)
	_ portssvc.ConverterSvcFacade = (*ConverterService)(nil)
)
