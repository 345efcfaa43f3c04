// Package http exposes the courier operations over REST.
// Handlers translate request bodies into commands and queries, and map the
// error taxonomy onto HTTP status codes.
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"medcourier/internal/core/application/usecases/commands"
	"medcourier/internal/core/application/usecases/queries"
	"medcourier/internal/core/domain/model/hospital"
	"medcourier/internal/core/domain/model/kernel"
	"medcourier/internal/core/domain/model/order"
	"medcourier/internal/core/domain/model/qr"
	"medcourier/internal/core/domain/model/rider"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createCenterHandler     commands.CreateCenterCommandHandler
	approveCenterHandler    commands.ApproveCenterCommandHandler
	rejectCenterHandler     commands.RejectCenterCommandHandler
	resubmitCenterHandler   commands.ResubmitCenterCommandHandler
	createRiderHandler      commands.CreateRiderCommandHandler
	approveRiderHandler     commands.ApproveRiderCommandHandler
	rejectRiderHandler      commands.RejectRiderCommandHandler
	resubmitRiderHandler    commands.ResubmitRiderCommandHandler
	riderAvailability       commands.SetRiderAvailabilityCommandHandler
	createHospitalHandler   commands.CreateHospitalCommandHandler
	createOrderHandler      commands.CreateOrderCommandHandler
	assignRiderHandler      commands.AssignRiderCommandHandler
	startTransitHandler     commands.StartTransitCommandHandler
	cancelOrderHandler      commands.CancelOrderCommandHandler
	recordScanHandler       commands.RecordScanCommandHandler
	initiateHandoverHandler commands.InitiateHandoverCommandHandler
	acceptHandoverHandler   commands.AcceptHandoverCommandHandler
	cancelHandoverHandler   commands.CancelHandoverCommandHandler

	// Query handlers
	custodyTimelineHandler queries.GetCustodyTimelineQueryHandler
	approvalStatusHandler  queries.GetApprovalStatusQueryHandler
	slaReportHandler       queries.GetSLAReportQueryHandler
	activeOrdersHandler    queries.GetActiveOrdersQueryHandler
	availableRiders        queries.GetAvailableRidersQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createCenterHandler commands.CreateCenterCommandHandler,
	approveCenterHandler commands.ApproveCenterCommandHandler,
	rejectCenterHandler commands.RejectCenterCommandHandler,
	resubmitCenterHandler commands.ResubmitCenterCommandHandler,
	createRiderHandler commands.CreateRiderCommandHandler,
	approveRiderHandler commands.ApproveRiderCommandHandler,
	rejectRiderHandler commands.RejectRiderCommandHandler,
	resubmitRiderHandler commands.ResubmitRiderCommandHandler,
	riderAvailability commands.SetRiderAvailabilityCommandHandler,
	createHospitalHandler commands.CreateHospitalCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	assignRiderHandler commands.AssignRiderCommandHandler,
	startTransitHandler commands.StartTransitCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	recordScanHandler commands.RecordScanCommandHandler,
	initiateHandoverHandler commands.InitiateHandoverCommandHandler,
	acceptHandoverHandler commands.AcceptHandoverCommandHandler,
	cancelHandoverHandler commands.CancelHandoverCommandHandler,
	custodyTimelineHandler queries.GetCustodyTimelineQueryHandler,
	approvalStatusHandler queries.GetApprovalStatusQueryHandler,
	slaReportHandler queries.GetSLAReportQueryHandler,
	activeOrdersHandler queries.GetActiveOrdersQueryHandler,
	availableRiders queries.GetAvailableRidersQueryHandler,
) *Server {
	return &Server{
		createCenterHandler:     createCenterHandler,
		approveCenterHandler:    approveCenterHandler,
		rejectCenterHandler:     rejectCenterHandler,
		resubmitCenterHandler:   resubmitCenterHandler,
		createRiderHandler:      createRiderHandler,
		approveRiderHandler:     approveRiderHandler,
		rejectRiderHandler:      rejectRiderHandler,
		resubmitRiderHandler:    resubmitRiderHandler,
		riderAvailability:       riderAvailability,
		createHospitalHandler:   createHospitalHandler,
		createOrderHandler:      createOrderHandler,
		assignRiderHandler:      assignRiderHandler,
		startTransitHandler:     startTransitHandler,
		cancelOrderHandler:      cancelOrderHandler,
		recordScanHandler:       recordScanHandler,
		initiateHandoverHandler: initiateHandoverHandler,
		acceptHandoverHandler:   acceptHandoverHandler,
		cancelHandoverHandler:   cancelHandoverHandler,
		custodyTimelineHandler:  custodyTimelineHandler,
		approvalStatusHandler:   approvalStatusHandler,
		slaReportHandler:        slaReportHandler,
		activeOrdersHandler:     activeOrdersHandler,
		availableRiders:         availableRiders,
	}
}

// RegisterRoutes binds every REST operation onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.POST("/centers", s.CreateCenter)
	e.POST("/centers/:id/approve", s.ApproveCenter)
	e.POST("/centers/:id/reject", s.RejectCenter)
	e.POST("/centers/:id/resubmit", s.ResubmitCenter)
	e.GET("/centers/:id/approval-status", s.GetApprovalStatus)

	e.POST("/riders", s.CreateRider)
	e.GET("/riders/available", s.GetAvailableRiders)
	e.POST("/riders/:id/approve", s.ApproveRider)
	e.POST("/riders/:id/reject", s.RejectRider)
	e.POST("/riders/:id/resubmit", s.ResubmitRider)
	e.POST("/riders/:id/availability", s.SetRiderAvailability)
	e.GET("/riders/:id/approval-status", s.GetApprovalStatus)

	e.POST("/hospitals", s.CreateHospital)

	e.POST("/orders", s.CreateOrder)
	e.GET("/orders/active", s.GetActiveOrders)
	e.POST("/orders/:id/assign-rider", s.AssignRider)
	e.POST("/orders/:id/start-transit", s.StartTransit)
	e.POST("/orders/:id/cancel", s.CancelOrder)
	e.GET("/orders/:id/custody-timeline", s.GetCustodyTimeline)
	e.GET("/orders/:id/sla", s.GetOrderSLA)
	e.GET("/sla/report", s.GetSLAReport)

	e.POST("/qr/scan", s.RecordScan)

	e.POST("/orders/:id/handover/initiate", s.InitiateHandover)
	e.POST("/handovers/:id/accept", s.AcceptHandover)
	e.POST("/handovers/:id/cancel", s.CancelHandover)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateCenter handles POST /centers - registers a collection center and
// opens its approval scopes.
func (s *Server) CreateCenter(ctx echo.Context) error {
	var req createCenterRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	location, err := kernel.NewGeoPoint(req.Latitude, req.Longitude)
	if err != nil {
		return writeError(ctx, err)
	}
	hospitalIDs := make([]kernel.UUID, 0, len(req.HospitalIDs))
	for _, raw := range req.HospitalIDs {
		hospitalID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return writeError(ctx, idErr)
		}
		hospitalIDs = append(hospitalIDs, hospitalID)
	}

	centerID := kernel.NewUUID()
	cmd, err := commands.NewCreateCenterCommand(centerID, req.Name, location, hospitalIDs...)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createCenterHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"centerId": centerID.String()})
}

// ApproveCenter handles POST /centers/:id/approve. A request without a
// hospital id approves the HQ scope.
func (s *Server) ApproveCenter(ctx echo.Context) error {
	centerID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req approvalDecisionRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}
	approverID, hospitalID, err := req.actors()
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewApproveCenterCommand(centerID, hospitalID, approverID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.approveCenterHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"status": "approved"})
}

// RejectCenter handles POST /centers/:id/reject.
func (s *Server) RejectCenter(ctx echo.Context) error {
	centerID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req approvalDecisionRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}
	approverID, hospitalID, err := req.actors()
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRejectCenterCommand(centerID, hospitalID, approverID, req.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.rejectCenterHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"status": "rejected"})
}

// ResubmitCenter handles POST /centers/:id/resubmit - reopens a rejected scope.
func (s *Server) ResubmitCenter(ctx echo.Context) error {
	centerID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req approvalDecisionRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}
	actorID, hospitalID, err := req.actors()
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewResubmitCenterCommand(centerID, hospitalID, actorID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.resubmitCenterHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"status": "pending"})
}

// CreateRider handles POST /riders - onboards a rider and opens their
// approval scopes.
func (s *Server) CreateRider(ctx echo.Context) error {
	var req createRiderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	hospitalIDs := make([]kernel.UUID, 0, len(req.HospitalIDs))
	for _, raw := range req.HospitalIDs {
		hospitalID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return writeError(ctx, idErr)
		}
		hospitalIDs = append(hospitalIDs, hospitalID)
	}

	riderID := kernel.NewUUID()
	cmd, err := commands.NewCreateRiderCommand(riderID, req.Name, req.Phone, hospitalIDs...)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createRiderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"riderId": riderID.String()})
}

// ApproveRider handles POST /riders/:id/approve. A request without a
// hospital id approves the HQ scope.
func (s *Server) ApproveRider(ctx echo.Context) error {
	riderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req approvalDecisionRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}
	approverID, hospitalID, err := req.actors()
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewApproveRiderCommand(riderID, hospitalID, approverID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.approveRiderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"status": "approved"})
}

// RejectRider handles POST /riders/:id/reject.
func (s *Server) RejectRider(ctx echo.Context) error {
	riderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req approvalDecisionRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}
	approverID, hospitalID, err := req.actors()
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRejectRiderCommand(riderID, hospitalID, approverID, req.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.rejectRiderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"status": "rejected"})
}

// ResubmitRider handles POST /riders/:id/resubmit - reopens a rejected scope.
func (s *Server) ResubmitRider(ctx echo.Context) error {
	riderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req approvalDecisionRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}
	actorID, hospitalID, err := req.actors()
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewResubmitRiderCommand(riderID, hospitalID, actorID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.resubmitRiderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"status": "pending"})
}

// SetRiderAvailability handles POST /riders/:id/availability - puts a rider
// on or off shift.
func (s *Server) SetRiderAvailability(ctx echo.Context) error {
	riderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req riderAvailabilityRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}
	availability, err := rider.AvailabilityFromString(req.Availability)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSetRiderAvailabilityCommand(riderID, availability)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.riderAvailability.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{
		"riderId":      riderID.String(),
		"availability": availability.String(),
	})
}

// GetAvailableRiders handles GET /riders/available.
func (s *Server) GetAvailableRiders(ctx echo.Context) error {
	riders, err := s.availableRiders.Handle(ctx.Request().Context(),
		queries.NewGetAvailableRidersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]availableRiderResponse, 0, len(riders))
	for _, r := range riders {
		response = append(response, availableRiderResponse{
			RiderID: r.ID.String(),
			Name:    r.Name,
			Phone:   r.Phone,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateHospital handles POST /hospitals - registers a receiving hospital.
func (s *Server) CreateHospital(ctx echo.Context) error {
	var req createHospitalRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	kind, err := hospital.KindFromString(req.Kind)
	if err != nil {
		return writeError(ctx, err)
	}
	location, err := kernel.NewGeoPoint(req.Latitude, req.Longitude)
	if err != nil {
		return writeError(ctx, err)
	}

	hospitalID := kernel.NewUUID()
	cmd, err := commands.NewCreateHospitalCommand(hospitalID, req.Name, kind, location)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createHospitalHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"hospitalId": hospitalID.String()})
}

// GetApprovalStatus handles GET /centers/:id/approval-status and
// GET /riders/:id/approval-status; the scoped approval read model is shared.
func (s *Server) GetApprovalStatus(ctx echo.Context) error {
	ownerID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetApprovalStatusQuery(ownerID)
	if err != nil {
		return writeError(ctx, err)
	}

	status, err := s.approvalStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, approvalStatusResponse(status))
}

// CreateOrder handles POST /orders - registers a sample transport order and
// issues its pickup and delivery codes.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	centerID, err := kernel.UUIDFromString(req.CenterID)
	if err != nil {
		return writeError(ctx, err)
	}
	hospitalID, err := kernel.UUIDFromString(req.HospitalID)
	if err != nil {
		return writeError(ctx, err)
	}
	urgency, err := order.UrgencyFromString(req.Urgency)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, centerID, hospitalID, urgency)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{
		"orderId": orderID.String(),
		"status":  order.PendingRiderAssignment.String(),
	})
}

// GetActiveOrders handles GET /orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	active, err := s.activeOrdersHandler.Handle(ctx.Request().Context(),
		queries.NewGetActiveOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]activeOrderResponse, 0, len(active))
	for _, o := range active {
		item := activeOrderResponse{
			OrderID:    o.ID.String(),
			CenterID:   o.CenterID.String(),
			HospitalID: o.HospitalID.String(),
			Urgency:    o.Urgency.String(),
			Status:     o.Status.String(),
			CreatedAt:  o.CreatedAt,
		}
		if o.RiderID != nil {
			raw := o.RiderID.String()
			item.RiderID = &raw
		}
		response = append(response, item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AssignRider handles POST /orders/:id/assign-rider.
func (s *Server) AssignRider(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req riderActionRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}
	riderID, err := kernel.UUIDFromString(req.RiderID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAssignRiderCommand(orderID, riderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.assignRiderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{
		"orderId": orderID.String(),
		"status":  order.Assigned.String(),
	})
}

// StartTransit handles POST /orders/:id/start-transit.
func (s *Server) StartTransit(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req riderActionRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}
	riderID, err := kernel.UUIDFromString(req.RiderID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewStartTransitCommand(orderID, riderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.startTransitHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{
		"orderId": orderID.String(),
		"status":  order.InTransit.String(),
	})
}

// CancelOrder handles POST /orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req cancelRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{
		"orderId": orderID.String(),
		"status":  order.Cancelled.String(),
	})
}

// RecordScan handles POST /qr/scan - the single ingestion point for pickup,
// delivery and handover scans.
func (s *Server) RecordScan(ctx echo.Context) error {
	var req recordScanRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return writeError(ctx, err)
	}
	actorRole, err := qr.RoleFromString(req.ActorRole)
	if err != nil {
		return writeError(ctx, err)
	}

	var location *kernel.GeoPoint
	if req.Location != nil {
		point, pointErr := kernel.NewGeoPoint(req.Location.Latitude, req.Location.Longitude)
		if pointErr != nil {
			return writeError(ctx, pointErr)
		}
		location = &point
	}

	cmd, err := commands.NewRecordScanCommand(req.QRData, actorID, actorRole, location)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.recordScanHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"status": "recorded"})
}

// InitiateHandover handles POST /orders/:id/handover/initiate.
func (s *Server) InitiateHandover(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req initiateHandoverRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	fromRiderID, err := kernel.UUIDFromString(req.FromRiderID)
	if err != nil {
		return writeError(ctx, err)
	}
	toRiderID, err := kernel.UUIDFromString(req.ToRiderID)
	if err != nil {
		return writeError(ctx, err)
	}
	point, err := kernel.NewGeoPoint(req.Latitude, req.Longitude)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewInitiateHandoverCommand(orderID, fromRiderID, toRiderID,
		req.Reason, point)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.initiateHandoverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"status": "initiated"})
}

// AcceptHandover handles POST /handovers/:id/accept.
func (s *Server) AcceptHandover(ctx echo.Context) error {
	handoverID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req riderActionRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}
	riderID, err := kernel.UUIDFromString(req.RiderID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAcceptHandoverCommand(handoverID, riderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.acceptHandoverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"status": "accepted"})
}

// CancelHandover handles POST /handovers/:id/cancel.
func (s *Server) CancelHandover(ctx echo.Context) error {
	handoverID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req cancelRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelHandoverCommand(handoverID, req.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.cancelHandoverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"status": "cancelled"})
}

// GetCustodyTimeline handles GET /orders/:id/custody-timeline.
func (s *Server) GetCustodyTimeline(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetCustodyTimelineQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	timeline, err := s.custodyTimelineHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, timelineResponse(timeline))
}

// GetOrderSLA handles GET /orders/:id/sla.
func (s *Server) GetOrderSLA(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetSLAReportQueryForOrder(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	report, err := s.slaReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, slaReportResponse(report))
}

// GetSLAReport handles GET /sla/report - the fleet-wide lateness picture.
func (s *Server) GetSLAReport(ctx echo.Context) error {
	report, err := s.slaReportHandler.Handle(ctx.Request().Context(),
		queries.NewGetSLAReportQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, slaReportResponse(report))
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}
