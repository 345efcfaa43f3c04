package cmd

import (
	"log/slog"
	"strings"

	"gorm.io/gorm"

	httpin "medcourier/internal/adapters/in/http"
	"medcourier/internal/adapters/out/geo"
	"medcourier/internal/adapters/out/kafka"
	"medcourier/internal/adapters/out/postgres"
	"medcourier/internal/adapters/out/postgres/qrrepo"
	"medcourier/internal/core/application/usecases/commands"
	"medcourier/internal/core/application/usecases/queries"
	"medcourier/internal/core/domain/services"
	"medcourier/internal/core/ports"
	"medcourier/internal/jobs"
)

// CompositionRoot wires adapters into use case handlers. Each Create method
// returns a ready handler; shared collaborators are built once.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  *kafka.Publisher
	distances  ports.DistanceCalculator
	slaMonitor *services.SLAMonitor
	logger     *slog.Logger
}

// NewCompositionRoot creates the composition root for the given configuration.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher: kafka.NewPublisher(
			strings.Split(config.KafkaHost, ","),
			config.KafkaOrderChangedTopic,
			config.KafkaScanRecordedTopic,
		),
		distances:  geo.NewHaversineCalculator(),
		slaMonitor: services.NewSLAMonitor(),
		logger:     logger,
	}
}

// Close releases shared collaborators.
func (c *CompositionRoot) Close() error {
	return c.publisher.Close()
}

func (c *CompositionRoot) CreateCreateCenterCommandHandler() commands.CreateCenterCommandHandler {
	var f commands.CenterUoWFactory = FuncCenterUoWFactory(func() commands.CenterUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCenterCommandHandler(f)
}

func (c *CompositionRoot) CreateApproveCenterCommandHandler() commands.ApproveCenterCommandHandler {
	var f commands.CenterUoWFactory = FuncCenterUoWFactory(func() commands.CenterUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveCenterCommandHandler(f)
}

func (c *CompositionRoot) CreateRejectCenterCommandHandler() commands.RejectCenterCommandHandler {
	var f commands.CenterUoWFactory = FuncCenterUoWFactory(func() commands.CenterUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectCenterCommandHandler(f)
}

func (c *CompositionRoot) CreateResubmitCenterCommandHandler() commands.ResubmitCenterCommandHandler {
	var f commands.CenterUoWFactory = FuncCenterUoWFactory(func() commands.CenterUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResubmitCenterCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateRiderCommandHandler() commands.CreateRiderCommandHandler {
	return commands.NewCreateRiderCommandHandler(c.riderUoWFactory())
}

func (c *CompositionRoot) CreateApproveRiderCommandHandler() commands.ApproveRiderCommandHandler {
	return commands.NewApproveRiderCommandHandler(c.riderUoWFactory())
}

func (c *CompositionRoot) CreateRejectRiderCommandHandler() commands.RejectRiderCommandHandler {
	return commands.NewRejectRiderCommandHandler(c.riderUoWFactory())
}

func (c *CompositionRoot) CreateResubmitRiderCommandHandler() commands.ResubmitRiderCommandHandler {
	return commands.NewResubmitRiderCommandHandler(c.riderUoWFactory())
}

func (c *CompositionRoot) CreateSetRiderAvailabilityCommandHandler() commands.SetRiderAvailabilityCommandHandler {
	return commands.NewSetRiderAvailabilityCommandHandler(c.riderUoWFactory())
}

func (c *CompositionRoot) CreateCreateHospitalCommandHandler() commands.CreateHospitalCommandHandler {
	var f commands.HospitalUoWFactory = FuncHospitalUoWFactory(func() commands.HospitalUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateHospitalCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.distances, c.publisher, c.config.QRCodeTTL)
}

func (c *CompositionRoot) CreateAssignRiderCommandHandler() commands.AssignRiderCommandHandler {
	return commands.NewAssignRiderCommandHandler(c.assignUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateStartTransitCommandHandler() commands.StartTransitCommandHandler {
	return commands.NewStartTransitCommandHandler(c.assignUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.assignUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateRecordScanCommandHandler() commands.RecordScanCommandHandler {
	var f commands.ScanUoWFactory = FuncScanUoWFactory(func() commands.ScanUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordScanCommandHandler(f, c.distances, c.publisher)
}

func (c *CompositionRoot) CreateInitiateHandoverCommandHandler() commands.InitiateHandoverCommandHandler {
	return commands.NewInitiateHandoverCommandHandler(c.handoverUoWFactory(), c.config.QRCodeTTL)
}

func (c *CompositionRoot) CreateAcceptHandoverCommandHandler() commands.AcceptHandoverCommandHandler {
	return commands.NewAcceptHandoverCommandHandler(c.handoverUoWFactory())
}

func (c *CompositionRoot) CreateCancelHandoverCommandHandler() commands.CancelHandoverCommandHandler {
	return commands.NewCancelHandoverCommandHandler(c.handoverUoWFactory())
}

func (c *CompositionRoot) CreateGetCustodyTimelineQueryHandler() queries.GetCustodyTimelineQueryHandler {
	return queries.NewGetCustodyTimelineQueryHandler(c.gormDB, qrrepo.NewGormQRRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetApprovalStatusQueryHandler() queries.GetApprovalStatusQueryHandler {
	return queries.NewGetApprovalStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSLAReportQueryHandler() queries.GetSLAReportQueryHandler {
	return queries.NewGetSLAReportQueryHandler(c.gormDB, c.slaMonitor)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableRidersQueryHandler() queries.GetAvailableRidersQueryHandler {
	return queries.NewGetAvailableRidersQueryHandler(c.uowFactory.Create().RiderRepository())
}

// CreateHTTPServer builds the REST server with every handler wired in.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateCenterCommandHandler(),
		c.CreateApproveCenterCommandHandler(),
		c.CreateRejectCenterCommandHandler(),
		c.CreateResubmitCenterCommandHandler(),
		c.CreateCreateRiderCommandHandler(),
		c.CreateApproveRiderCommandHandler(),
		c.CreateRejectRiderCommandHandler(),
		c.CreateResubmitRiderCommandHandler(),
		c.CreateSetRiderAvailabilityCommandHandler(),
		c.CreateCreateHospitalCommandHandler(),
		c.CreateCreateOrderCommandHandler(),
		c.CreateAssignRiderCommandHandler(),
		c.CreateStartTransitCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateRecordScanCommandHandler(),
		c.CreateInitiateHandoverCommandHandler(),
		c.CreateAcceptHandoverCommandHandler(),
		c.CreateCancelHandoverCommandHandler(),
		c.CreateGetCustodyTimelineQueryHandler(),
		c.CreateGetApprovalStatusQueryHandler(),
		c.CreateGetSLAReportQueryHandler(),
		c.CreateGetActiveOrdersQueryHandler(),
		c.CreateGetAvailableRidersQueryHandler(),
	)
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetSLAReportQueryHandler(), c.logger)
}

func (c *CompositionRoot) assignUoWFactory() commands.AssignUoWFactory {
	return FuncAssignUoWFactory(func() commands.AssignUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) handoverUoWFactory() commands.HandoverUoWFactory {
	return FuncHandoverUoWFactory(func() commands.HandoverUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) riderUoWFactory() commands.RiderUoWFactory {
	return FuncRiderUoWFactory(func() commands.RiderUoW {
		return c.uowFactory.Create()
	})
}

type FuncCenterUoWFactory func() commands.CenterUoW

func (f FuncCenterUoWFactory) Create() commands.CenterUoW {
	return f()
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncAssignUoWFactory func() commands.AssignUoW

func (f FuncAssignUoWFactory) Create() commands.AssignUoW {
	return f()
}

type FuncScanUoWFactory func() commands.ScanUoW

func (f FuncScanUoWFactory) Create() commands.ScanUoW {
	return f()
}

type FuncHandoverUoWFactory func() commands.HandoverUoW

func (f FuncHandoverUoWFactory) Create() commands.HandoverUoW {
	return f()
}

type FuncRiderUoWFactory func() commands.RiderUoW

func (f FuncRiderUoWFactory) Create() commands.RiderUoW {
	return f()
}

type FuncHospitalUoWFactory func() commands.HospitalUoW

func (f FuncHospitalUoWFactory) Create() commands.HospitalUoW {
	return f()
}
