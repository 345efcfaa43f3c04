package commands_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"medcourier/internal/core/application/usecases/commands"
	"medcourier/internal/core/domain/model/approval"
	"medcourier/internal/core/domain/model/center"
	"medcourier/internal/core/domain/model/handover"
	"medcourier/internal/core/domain/model/hospital"
	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/core/domain/model/order"
	"medcourier/internal/core/domain/model/qr"
	"medcourier/internal/core/domain/model/rider"
	"medcourier/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockRiderRepository struct{ mock.Mock }

func (m *MockRiderRepository) Add(ctx context.Context, r *rider.Rider) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRiderRepository) Update(ctx context.Context, r *rider.Rider) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRiderRepository) Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rider.Rider), args.Error(1)
}

func (m *MockRiderRepository) GetAllAvailable(ctx context.Context) ([]*rider.Rider, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*rider.Rider), args.Error(1)
}

type MockCenterRepository struct{ mock.Mock }

func (m *MockCenterRepository) Add(ctx context.Context, c *center.Center) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCenterRepository) Update(ctx context.Context, c *center.Center) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCenterRepository) Get(ctx context.Context, id kernel.UUID) (*center.Center, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*center.Center), args.Error(1)
}

type MockHospitalRepository struct{ mock.Mock }

func (m *MockHospitalRepository) Add(ctx context.Context, h *hospital.Hospital) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockHospitalRepository) Update(ctx context.Context, h *hospital.Hospital) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockHospitalRepository) Get(ctx context.Context, id kernel.UUID) (*hospital.Hospital, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hospital.Hospital), args.Error(1)
}

type MockQRRepository struct{ mock.Mock }

func (m *MockQRRepository) AddCode(ctx context.Context, code qr.Code) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *MockQRRepository) GetCode(ctx context.Context, id kernel.UUID) (qr.Code, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(qr.Code), args.Error(1)
}

func (m *MockQRRepository) AddScan(ctx context.Context, event qr.ScanEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockQRRepository) AddDuplicateScan(ctx context.Context, event qr.ScanEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockQRRepository) GetScansByOrder(ctx context.Context, orderID kernel.UUID) ([]qr.ScanEvent, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]qr.ScanEvent), args.Error(1)
}

type MockHandoverRepository struct{ mock.Mock }

func (m *MockHandoverRepository) Add(ctx context.Context, h *handover.Handover) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockHandoverRepository) Update(ctx context.Context, h *handover.Handover) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockHandoverRepository) Get(ctx context.Context, id kernel.UUID) (*handover.Handover, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*handover.Handover), args.Error(1)
}

func (m *MockHandoverRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*handover.Handover, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*handover.Handover), args.Error(1)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishOrderChanged(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishScanRecorded(ctx context.Context, event qr.ScanEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockDistanceCalculator struct{ mock.Mock }

func (m *MockDistanceCalculator) DistanceKm(from, to kernel.GeoPoint) (float64, error) {
	args := m.Called(from, to)
	return args.Get(0).(float64), args.Error(1)
}

// MockUoW satisfies every unit of work interface in this package so each
// handler test can reuse it; expectations pin down which repositories a
// handler actually touches.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) RiderRepository() ports.RiderRepository {
	args := m.Called()
	return args.Get(0).(ports.RiderRepository)
}

func (m *MockUoW) CenterRepository() ports.CenterRepository {
	args := m.Called()
	return args.Get(0).(ports.CenterRepository)
}

func (m *MockUoW) HospitalRepository() ports.HospitalRepository {
	args := m.Called()
	return args.Get(0).(ports.HospitalRepository)
}

func (m *MockUoW) QRRepository() ports.QRRepository {
	args := m.Called()
	return args.Get(0).(ports.QRRepository)
}

func (m *MockUoW) HandoverRepository() ports.HandoverRepository {
	args := m.Called()
	return args.Get(0).(ports.HandoverRepository)
}

type MockCenterUoWFactory struct{ mock.Mock }

func (m *MockCenterUoWFactory) Create() commands.CenterUoW {
	args := m.Called()
	return args.Get(0).(commands.CenterUoW)
}

type MockCreateOrderUoWFactory struct{ mock.Mock }

func (m *MockCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateOrderUoW)
}

type MockAssignUoWFactory struct{ mock.Mock }

func (m *MockAssignUoWFactory) Create() commands.AssignUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignUoW)
}

type MockScanUoWFactory struct{ mock.Mock }

func (m *MockScanUoWFactory) Create() commands.ScanUoW {
	args := m.Called()
	return args.Get(0).(commands.ScanUoW)
}

type MockHandoverUoWFactory struct{ mock.Mock }

func (m *MockHandoverUoWFactory) Create() commands.HandoverUoW {
	args := m.Called()
	return args.Get(0).(commands.HandoverUoW)
}

type MockRiderUoWFactory struct{ mock.Mock }

func (m *MockRiderUoWFactory) Create() commands.RiderUoW {
	args := m.Called()
	return args.Get(0).(commands.RiderUoW)
}

type MockHospitalUoWFactory struct{ mock.Mock }

func (m *MockHospitalUoWFactory) Create() commands.HospitalUoW {
	args := m.Called()
	return args.Get(0).(commands.HospitalUoW)
}

// approvedRecord builds an approval record that is effective for hospitalID.
func approvedRecord(t require.TestingT, hospitalID kernel.UUID) *approval.Record {
	record, err := approval.NewRecord(hospitalID)
	require.NoError(t, err)
	require.NoError(t, record.ApproveByHospital(hospitalID, kernel.NewUUID(), time.Now().UTC()))
	require.NoError(t, record.ApproveByHQ(kernel.NewUUID(), time.Now().UTC()))
	return record
}

// testCenter builds a center fully approved to dispatch to hospitalID.
func testCenter(t require.TestingT, id, hospitalID kernel.UUID) *center.Center {
	location, err := kernel.NewGeoPoint(13.0827, 80.2707)
	require.NoError(t, err)
	c, err := center.RestoreCenter(id, "Anna Nagar Collection Center", location,
		approvedRecord(t, hospitalID), 1)
	require.NoError(t, err)
	return c
}

// testHospital builds an approved hospital at a fixed location.
func testHospital(t require.TestingT, id kernel.UUID) *hospital.Hospital {
	location, err := kernel.NewGeoPoint(13.0569, 80.2425)
	require.NoError(t, err)
	h, err := hospital.RestoreHospital(id, "Apollo Greams Road", hospital.Regional,
		location, approval.Approved, 1)
	require.NoError(t, err)
	return h
}

// testRider builds an approved rider for hospitalID with the given availability.
func testRider(t require.TestingT, id, hospitalID kernel.UUID,
	availability rider.Availability) *rider.Rider {
	r, err := rider.RestoreRider(id, "Sam Ortiz", "+15550100",
		approvedRecord(t, hospitalID), availability, 1)
	require.NoError(t, err)
	return r
}

// testAssignedOrder builds an order already assigned to riderID.
func testAssignedOrder(t require.TestingT, id, hospitalID, riderID kernel.UUID) *order.Order {
	createdAt := time.Now().UTC().Add(-10 * time.Minute)
	assignedAt := createdAt.Add(2 * time.Minute)
	o, err := order.RestoreOrder(order.RestoreOrderParams{
		ID:               id,
		CenterID:         kernel.NewUUID(),
		HospitalID:       hospitalID,
		Urgency:          order.Urgent,
		Status:           order.Assigned,
		RiderID:          &riderID,
		CreatedAt:        createdAt,
		AssignedAt:       &assignedAt,
		PickupDistanceKm: 4.2,
		Version:          2,
	})
	require.NoError(t, err)
	return o
}
