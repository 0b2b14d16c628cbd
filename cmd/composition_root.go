package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	apihttp "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/in/console"
	"dispatch/internal/adapters/out/eventlog"
	"dispatch/internal/adapters/out/memory"
	"dispatch/internal/adapters/out/metrics"
	"dispatch/internal/adapters/out/providers"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/jobs"
	"dispatch/internal/pkg/tasks"
	"dispatch/internal/scheduler"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type CompositionRoot struct {
	config Config
	logger *slog.Logger
	clock  ports.Clock

	store     *memory.DeliveryStore
	tasks     *tasks.Set
	publisher ports.EventPublisher
	registry  *providers.Registry
	scheduler *scheduler.Scheduler

	metricsRegistry *prometheus.Registry
}

func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		config: config,
		logger: logger,
		clock:  ports.ClockFunc(time.Now),
		store:  memory.NewDeliveryStore(),
		tasks:  &tasks.Set{},
	}

	publishers := eventlog.Fanout{eventlog.NewLogPublisher(logger)}
	var promPublisher *metrics.PrometheusPublisher
	if config.MetricsEnabled {
		c.metricsRegistry = prometheus.NewRegistry()
		c.metricsRegistry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		promPublisher = metrics.NewPrometheusPublisher(c.metricsRegistry, logger)
		publishers = append(publishers, promPublisher)
	}
	c.publisher = publishers

	delays, err := providers.NewDelayRange(config.ShippingDelayMin, config.ShippingDelayMax, config.ShippingDelayStep)
	if err != nil {
		return nil, fmt.Errorf("shipping delay range: %w", err)
	}

	kinds := delivery.Providers()
	deliveryProviders := make([]ports.DeliveryProvider, 0, len(kinds))
	for _, kind := range kinds {
		p, pErr := providers.NewSimulated(kind, delays, c.store, c.publisher, c.clock, c.tasks, logger)
		if pErr != nil {
			return nil, fmt.Errorf("provider %s: %w", kind, pErr)
		}
		deliveryProviders = append(deliveryProviders, p)
	}
	if c.registry, err = providers.NewRegistry(deliveryProviders...); err != nil {
		return nil, err
	}

	shipHandler := c.CreateShipOrderCommandHandler()
	var dispatcher scheduler.Dispatcher = scheduler.DispatcherFunc(func(ctx context.Context, o *order.Order) error {
		cmd, cmdErr := commands.NewShipOrderCommand(o.Name())
		if cmdErr != nil {
			return cmdErr
		}
		_, shipErr := shipHandler.Handle(ctx, cmd)
		return shipErr
	})
	c.scheduler, err = scheduler.New(scheduler.Config{PollInterval: config.SchedulerPollInterval}, dispatcher,
		c.publisher, c.clock, logger)
	if err != nil {
		return nil, err
	}

	if promPublisher != nil {
		promPublisher.RegisterGauges(c.metricsRegistry, metrics.Gauges{
			StoreSize:         func() int { return c.store.Size(context.Background()) },
			PendingOrders:     c.scheduler.Len,
			ShipmentsInFlight: c.tasks.InFlight,
		})
	}

	return c, nil
}

func (c *CompositionRoot) Scheduler() *scheduler.Scheduler {
	return c.scheduler
}

// Tasks returns the set of in-flight shipment completions, drained on shutdown.
func (c *CompositionRoot) Tasks() *tasks.Set {
	return c.tasks
}

func (c *CompositionRoot) CreateScheduleOrderCommandHandler() commands.ScheduleOrderCommandHandler {
	return commands.NewScheduleOrderCommandHandler(c.scheduler)
}

func (c *CompositionRoot) CreateShipOrderCommandHandler() commands.ShipOrderCommandHandler {
	return commands.NewShipOrderCommandHandler(services.NewProviderDispatcher(), c.registry)
}

func (c *CompositionRoot) CreateSweepDeliveriesCommandHandler() commands.SweepDeliveriesCommandHandler {
	return commands.NewSweepDeliveriesCommandHandler(c.store, c.publisher, c.clock, c.logger)
}

func (c *CompositionRoot) CreateReapArchivedDeliveriesCommandHandler() (commands.ReapArchivedDeliveriesCommandHandler, error) {
	return commands.NewReapArchivedDeliveriesCommandHandler(c.store, c.publisher, c.clock, c.config.RetentionWindow, c.logger)
}

func (c *CompositionRoot) CreateGetDeliveriesQueryHandler() queries.GetDeliveriesQueryHandler {
	return queries.NewGetDeliveriesQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.scheduler)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	sweepJob, err := jobs.NewDeliverySweepJob(c.CreateSweepDeliveriesCommandHandler(), c.config.SweepInterval, c.logger)
	if err != nil {
		return nil, err
	}

	reapHandler, err := c.CreateReapArchivedDeliveriesCommandHandler()
	if err != nil {
		return nil, err
	}
	retentionJob, err := jobs.NewArchiveRetentionJob(reapHandler, c.config.ReapInterval, c.logger)
	if err != nil {
		return nil, err
	}

	return jobs.NewJobManager(sweepJob, retentionJob), nil
}

func (c *CompositionRoot) CreateHTTPServer() *apihttp.Server {
	return apihttp.NewServer(
		c.CreateScheduleOrderCommandHandler(),
		c.CreateGetDeliveriesQueryHandler(),
		c.CreateGetPendingOrdersQueryHandler(),
		c.clock,
	)
}

// MetricsHandler returns the scrape handler, or nil when metrics are disabled.
func (c *CompositionRoot) MetricsHandler() http.Handler {
	if c.metricsRegistry == nil {
		return nil
	}
	return promhttp.HandlerFor(c.metricsRegistry, promhttp.HandlerOpts{})
}

func (c *CompositionRoot) CreateConsoleReader(out io.Writer) *console.Reader {
	return console.NewReader(c.CreateScheduleOrderCommandHandler(), c.clock, out, c.logger)
}
