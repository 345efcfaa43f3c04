package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"medcourier/internal/adapters/out/postgres/approvaldto"
	"medcourier/internal/adapters/out/postgres/handoverrepo"
	"medcourier/internal/adapters/out/postgres/orderrepo"
	"medcourier/internal/adapters/out/postgres/qrrepo"
	"medcourier/internal/core/application/usecases/queries"
	"medcourier/internal/core/domain/model/approval"
	"medcourier/internal/core/domain/model/custody"
	"medcourier/internal/core/domain/model/handover"
	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/core/domain/model/order"
	"medcourier/internal/core/domain/model/qr"
	"medcourier/internal/core/domain/services"
	"medcourier/internal/pkg/errs"
)

type QueryHandlersTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&approvaldto.ScopeDTO{},
		&approvaldto.DecisionDTO{},
		&qrrepo.ScanEventDTO{},
		&qrrepo.DuplicateScanDTO{},
		&handoverrepo.HandoverDTO{},
	)
	suite.Require().NoError(err)
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	for _, table := range []string{
		"orders", "approval_scopes", "approval_decisions",
		"scan_events", "duplicate_scans", "handovers",
	} {
		err := suite.db.Exec("TRUNCATE TABLE " + table + " CASCADE").Error
		suite.Require().NoError(err)
	}
}

func (suite *QueryHandlersTestSuite) seedOrder(dto orderrepo.OrderDTO) orderrepo.OrderDTO {
	if dto.ID == uuid.Nil {
		dto.ID = uuid.New()
	}
	if dto.CenterID == uuid.Nil {
		dto.CenterID = uuid.New()
	}
	if dto.HospitalID == uuid.Nil {
		dto.HospitalID = uuid.New()
	}
	if dto.Version == 0 {
		dto.Version = 1
	}
	if dto.PickupDistanceKm == 0 {
		dto.PickupDistanceKm = 4.2
	}
	err := suite.db.Create(&dto).Error
	suite.Require().NoError(err)
	return dto
}

func (suite *QueryHandlersTestSuite) TestGetActiveOrders_EmptyDatabase() {
	handler := queries.NewGetActiveOrdersQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), queries.NewGetActiveOrdersQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *QueryHandlersTestSuite) TestGetActiveOrders_SkipsTerminalOrders() {
	now := time.Now().UTC().Truncate(time.Microsecond)
	riderID := uuid.New()

	oldest := suite.seedOrder(orderrepo.OrderDTO{
		Urgency:   int(order.Emergency),
		Status:    int(order.PendingRiderAssignment),
		CreatedAt: now.Add(-30 * time.Minute),
	})
	newest := suite.seedOrder(orderrepo.OrderDTO{
		Urgency:   int(order.Routine),
		Status:    int(order.Assigned),
		RiderID:   &riderID,
		CreatedAt: now.Add(-5 * time.Minute),
	})
	suite.seedOrder(orderrepo.OrderDTO{
		Urgency:   int(order.Urgent),
		Status:    int(order.Delivered),
		CreatedAt: now.Add(-2 * time.Hour),
	})
	suite.seedOrder(orderrepo.OrderDTO{
		Urgency:      int(order.Urgent),
		Status:       int(order.Cancelled),
		CancelReason: "spoiled",
		CreatedAt:    now.Add(-time.Hour),
	})

	handler := queries.NewGetActiveOrdersQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), queries.NewGetActiveOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(oldest.ID.String(), result[0].ID.String(), "Oldest active order first")
	suite.Equal(order.PendingRiderAssignment, result[0].Status)
	suite.Nil(result[0].RiderID)
	suite.Equal(newest.ID.String(), result[1].ID.String())
	suite.Require().NotNil(result[1].RiderID)
	suite.Equal(riderID.String(), result[1].RiderID.String())
}

func (suite *QueryHandlersTestSuite) TestGetActiveOrders_ValidationError() {
	handler := queries.NewGetActiveOrdersQueryHandler(suite.db)

	_, err := handler.Handle(context.Background(), queries.GetActiveOrdersQuery{})

	suite.Require().Error(err)
	suite.ErrorIs(err, queries.ErrGetActiveOrdersQueryIsNotConstructed)
}

func (suite *QueryHandlersTestSuite) custodyTimelineHandler() queries.GetCustodyTimelineQueryHandler {
	return queries.NewGetCustodyTimelineQueryHandler(suite.db, qrrepo.NewGormQRRepository(suite.db))
}

func (suite *QueryHandlersTestSuite) TestGetCustodyTimeline_OrderNotFound() {
	handler := suite.custodyTimelineHandler()
	query, err := queries.NewGetCustodyTimelineQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestGetCustodyTimeline_FullJourney() {
	now := time.Now().UTC().Truncate(time.Microsecond)
	riderA, riderB := uuid.New(), uuid.New()
	confirmedAt := now.Add(-20 * time.Minute)
	assignedAt := now.Add(-55 * time.Minute)
	inTransitAt := now.Add(-47 * time.Minute)

	// The order references riderB: the handover split already reassigned it.
	seeded := suite.seedOrder(orderrepo.OrderDTO{
		Status:      int(order.Delivered),
		Urgency:     int(order.Urgent),
		RiderID:     &riderB,
		AssignedAt:  &assignedAt,
		InTransitAt: &inTransitAt,
	})

	pickupQR, handoverQR, deliveryQR := uuid.New(), uuid.New(), uuid.New()
	scans := []qrrepo.ScanEventDTO{
		{ID: uuid.New(), QRID: pickupQR, Kind: int(qr.Pickup), OrderID: seeded.ID,
			ActorID: riderA, ActorRole: int(qr.RiderRole), OccurredAt: now.Add(-50 * time.Minute)},
		{ID: uuid.New(), QRID: handoverQR, Kind: int(qr.Handover), OrderID: seeded.ID,
			ActorID: riderB, ActorRole: int(qr.RiderRole), OccurredAt: confirmedAt},
		{ID: uuid.New(), QRID: deliveryQR, Kind: int(qr.Delivery), OrderID: seeded.ID,
			ActorID: riderB, ActorRole: int(qr.RiderRole), OccurredAt: now.Add(-5 * time.Minute)},
	}
	for i := range scans {
		suite.Require().NoError(suite.db.Create(&scans[i]).Error)
	}
	duplicate := qrrepo.DuplicateScanDTO{
		ID: uuid.New(), QRID: pickupQR, Kind: int(qr.Pickup), OrderID: seeded.ID,
		ActorID: riderA, ActorRole: int(qr.RiderRole), OccurredAt: now.Add(-48 * time.Minute),
	}
	suite.Require().NoError(suite.db.Create(&duplicate).Error)

	transfer := handoverrepo.HandoverDTO{
		ID:              uuid.New(),
		OrderID:         seeded.ID,
		OriginalRiderID: riderA,
		NewRiderID:      riderB,
		Reason:          "vehicle breakdown",
		Point:           handoverrepo.GeoPointDTO{Latitude: 13.05, Longitude: 80.24},
		Status:          int(handover.Confirmed),
		InitiatedAt:     now.Add(-30 * time.Minute),
		ConfirmedAt:     &confirmedAt,
		Version:         3,
	}
	suite.Require().NoError(suite.db.Create(&transfer).Error)

	handler := suite.custodyTimelineHandler()
	query, err := queries.NewGetCustodyTimelineQuery(mustKernelUUID(suite, seeded.ID))
	suite.Require().NoError(err)

	timeline, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(timeline, 6)

	suite.Equal(1, timeline[0].SequenceNo)
	suite.Equal(custody.RiderAssigned, timeline[0].EventType)
	suite.Equal(riderA.String(), timeline[0].CustodianRiderID.String(),
		"Assignment belongs to the original rider even though the order references riderB")

	suite.Equal(custody.PickupScanned, timeline[1].EventType)
	suite.False(timeline[1].RejectedDuplicate)
	suite.Equal(riderA.String(), timeline[1].CustodianRiderID.String(),
		"Pickup predates the handover confirmation")

	suite.Equal(custody.PickupScanned, timeline[2].EventType)
	suite.True(timeline[2].RejectedDuplicate, "Second scan of the pickup code is a rejected duplicate")

	suite.Equal(custody.TransitStarted, timeline[3].EventType)
	suite.Equal(riderA.String(), timeline[3].CustodianRiderID.String())

	suite.Equal(custody.HandoverScanned, timeline[4].EventType)
	suite.Equal(riderB.String(), timeline[4].CustodianRiderID.String(),
		"Custody moves to the relieving rider at confirmation")

	suite.Equal(custody.DeliveryScanned, timeline[5].EventType)
	suite.Equal(riderB.String(), timeline[5].CustodianRiderID.String())
}

func (suite *QueryHandlersTestSuite) TestGetApprovalStatus_NotFound() {
	handler := queries.NewGetApprovalStatusQueryHandler(suite.db)
	query, err := queries.NewGetApprovalStatusQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestGetApprovalStatus_PendingHQDominates() {
	ctx := context.Background()
	ownerID := kernel.NewUUID()
	hospitalID := kernel.NewUUID()

	record, err := approval.NewRecord(hospitalID)
	suite.Require().NoError(err)
	err = record.ApproveByHospital(hospitalID, kernel.NewUUID(), time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(approvaldto.ReplaceForOwner(ctx, suite.db, ownerID, record))

	handler := queries.NewGetApprovalStatusQueryHandler(suite.db)
	query, err := queries.NewGetApprovalStatusQuery(ownerID)
	suite.Require().NoError(err)

	result, err := handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(approval.Pending, result.HQStatus)
	suite.Equal(approval.Pending, result.EffectiveStatus, "Pending HQ scope dominates")
	suite.Require().Len(result.Hospitals, 1)
	suite.Equal(approval.Approved, result.Hospitals[0].Status)
	suite.Equal(approval.Pending, result.Hospitals[0].EffectiveStatus)
	suite.Require().Len(result.History, 1)
	suite.Equal(approval.Approved, result.History[0].Outcome)
}

func (suite *QueryHandlersTestSuite) TestGetSLAReport_BreachesAndExclusions() {
	now := time.Now().UTC().Truncate(time.Microsecond)

	// Urgent pickup window is 15 minutes; assigned 30 minutes ago, no pickup.
	assignedAt := now.Add(-30 * time.Minute)
	riderID := uuid.New()
	suite.seedOrder(orderrepo.OrderDTO{
		Urgency:    int(order.Urgent),
		Status:     int(order.Assigned),
		RiderID:    &riderID,
		CreatedAt:  now.Add(-35 * time.Minute),
		AssignedAt: &assignedAt,
		Version:    2,
	})

	// Routine order delivered comfortably inside its windows.
	deliveredRider := uuid.New()
	createdAt := now.Add(-2 * time.Hour)
	onTimeAssigned := createdAt.Add(5 * time.Minute)
	onTimePickup := createdAt.Add(20 * time.Minute)
	onTimeTransit := createdAt.Add(21 * time.Minute)
	onTimeDelivered := createdAt.Add(70 * time.Minute)
	suite.seedOrder(orderrepo.OrderDTO{
		Urgency:          int(order.Routine),
		Status:           int(order.Delivered),
		RiderID:          &deliveredRider,
		CreatedAt:        createdAt,
		AssignedAt:       &onTimeAssigned,
		PickedUpAt:       &onTimePickup,
		InTransitAt:      &onTimeTransit,
		DeliveredAt:      &onTimeDelivered,
		ActualDistanceKm: 4.2,
		Version:          5,
	})

	cancelledAt := now.Add(-10 * time.Minute)
	suite.seedOrder(orderrepo.OrderDTO{
		Urgency:      int(order.Emergency),
		Status:       int(order.Cancelled),
		CreatedAt:    now.Add(-40 * time.Minute),
		CancelledAt:  &cancelledAt,
		CancelReason: "sample spoiled",
		Version:      2,
	})

	handler := queries.NewGetSLAReportQueryHandler(suite.db, services.NewSLAMonitor())
	result, err := handler.Handle(context.Background(), queries.NewGetSLAReportQuery())

	suite.Require().NoError(err)
	suite.Equal(2, result.Evaluated)
	suite.Equal(1, result.PickupBreaches)
	suite.Equal(0, result.DeliveryBreaches)
	suite.Equal(1, result.CancelledExcluded)
	suite.Require().Len(result.Orders, 3)
}

func mustKernelUUID(suite *QueryHandlersTestSuite, raw uuid.UUID) kernel.UUID {
	id, err := kernel.UUIDFromBytes(raw[:])
	suite.Require().NoError(err)
	return id
}

func TestQueryHandlersTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(QueryHandlersTestSuite))
}
