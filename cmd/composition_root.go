package cmd

import (
	"log/slog"
	"os"

	"matching/internal/adapters/out/notify"
	"matching/internal/adapters/out/postgres"
	"matching/internal/adapters/out/postgres/statsrepo"
	"matching/internal/core/application/usecases/commands"
	"matching/internal/core/application/usecases/queries"
	"matching/internal/core/domain/services"
	"matching/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use-case handlers. Handlers are cheap
// value types, so each Create* call builds a fresh one over the shared
// factory, notifier and recorder.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	validator  services.OfferValidator
	notifier   *notify.AsyncNotifier
	stats      *statsrepo.GormStatsRecorder
	logger     *slog.Logger

	sweepIntervalSeconds int
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	policy := services.DuplicatePolicyReject
	if config.DuplicatePolicy == "supersede" {
		policy = services.DuplicatePolicySupersede
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		validator:  services.NewOfferValidator(config.MaxCounterDepth, policy),
		notifier: notify.NewAsyncNotifier(
			notify.NewLogNotifier(logger), config.NotifierBufferSize, logger),
		stats:  statsrepo.NewGormStatsRecorder(gormDB),
		logger: logger,

		sweepIntervalSeconds: config.SweepIntervalSeconds,
	}
}

// Logger returns the process-wide structured logger.
func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

// Close flushes the async notification queue.
func (c *CompositionRoot) Close() {
	c.notifier.Close()
}

func (c *CompositionRoot) CreateCreateRequestCommandHandler() commands.CreateRequestCommandHandler {
	var f commands.RequestUoWFactory = FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateSubmitOfferCommandHandler() commands.SubmitOfferCommandHandler {
	return commands.NewSubmitOfferCommandHandler(c.createUoWFactory(), c.validator)
}

func (c *CompositionRoot) CreateCounterOfferCommandHandler() commands.CounterOfferCommandHandler {
	return commands.NewCounterOfferCommandHandler(c.createUoWFactory(), c.validator)
}

func (c *CompositionRoot) CreateAcceptOfferCommandHandler() commands.AcceptOfferCommandHandler {
	return commands.NewAcceptOfferCommandHandler(c.createUoWFactory(), c.notifier, c.stats)
}

func (c *CompositionRoot) CreateRejectOfferCommandHandler() commands.RejectOfferCommandHandler {
	return commands.NewRejectOfferCommandHandler(c.createUoWFactory(), c.stats)
}

func (c *CompositionRoot) CreateWithdrawOfferCommandHandler() commands.WithdrawOfferCommandHandler {
	return commands.NewWithdrawOfferCommandHandler(c.createUoWFactory(), c.notifier, c.stats)
}

func (c *CompositionRoot) CreateCancelRequestCommandHandler() commands.CancelRequestCommandHandler {
	return commands.NewCancelRequestCommandHandler(c.createUoWFactory(), c.stats)
}

func (c *CompositionRoot) CreateSweepExpiredCommandHandler() commands.SweepExpiredCommandHandler {
	return commands.NewSweepExpiredCommandHandler(c.createUoWFactory(), c.notifier, c.stats, c.logger)
}

func (c *CompositionRoot) CreateGetRequestOffersQueryHandler() queries.GetRequestOffersQueryHandler {
	return queries.NewGetRequestOffersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierStatsQueryHandler() queries.GetCourierStatsQueryHandler {
	return queries.NewGetCourierStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateSweepExpiredCommandHandler(), c.sweepIntervalSeconds, c.logger)
}

func (c *CompositionRoot) createUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncRequestUoWFactory func() commands.RequestUoW

func (f FuncRequestUoWFactory) Create() commands.RequestUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
