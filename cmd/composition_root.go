package cmd

import (
	"log/slog"
	"time"

	"shiplabel/internal/adapters/out/postgres/auditrepo"
	"shiplabel/internal/adapters/out/postgres/orderrepo"
	"shiplabel/internal/adapters/out/postgres/orgrepo"
	"shiplabel/internal/adapters/out/shippo"
	"shiplabel/internal/core/application/usecases/commands"
	"shiplabel/internal/core/application/usecases/queries"
	"shiplabel/internal/core/ports"
	"shiplabel/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB *gorm.DB
	logger *slog.Logger

	orderRepository *orderrepo.GormOrderRepository
	orgRepository   *orgrepo.GormOrganizationRepository
	auditLog        *auditrepo.GormAuditLog
	carrierClient   *shippo.Client
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:          gormDB,
		logger:          logger,
		orderRepository: orderrepo.NewGormOrderRepository(gormDB),
		orgRepository:   orgrepo.NewGormOrganizationRepository(gormDB),
		auditLog:        auditrepo.NewGormAuditLog(gormDB),
		carrierClient:   shippo.NewClient(config.CarrierBaseURL),
	}
}

func (c *CompositionRoot) OrderStore() ports.OrderStore {
	return c.orderRepository
}

func (c *CompositionRoot) OrganizationStore() ports.OrganizationStore {
	return c.orgRepository
}

func (c *CompositionRoot) CarrierService() ports.CarrierService {
	return c.carrierClient
}

func (c *CompositionRoot) AuditLog() ports.AuditLog {
	return c.auditLog
}

func (c *CompositionRoot) CreateProcessOrderShippingCommandHandler() commands.ProcessOrderShippingCommandHandler {
	purchaser := commands.NewLabelPurchaser(
		c.carrierClient,
		commands.ClockSleeper{},
		commands.DefaultInitialPollDelay,
		commands.DefaultRetryPollDelay,
	)
	return commands.NewProcessOrderShippingCommandHandler(
		c.orgRepository,
		c.orderRepository,
		c.carrierClient,
		purchaser,
	)
}

func (c *CompositionRoot) CreateProcessBatchShippingCommandHandler() commands.ProcessBatchShippingCommandHandler {
	processHandler := c.CreateProcessOrderShippingCommandHandler()
	return commands.NewProcessBatchShippingCommandHandler(processHandler, c.auditLog, c.logger)
}

func (c *CompositionRoot) CreateGetShippingResultQueryHandler() queries.GetShippingResultQueryHandler {
	return queries.NewGetShippingResultQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager(location *time.Location) *jobs.JobManager {
	return jobs.NewJobManager(
		c.orgRepository,
		c.orderRepository,
		c.CreateProcessBatchShippingCommandHandler(),
		location,
		c.logger,
	)
}
