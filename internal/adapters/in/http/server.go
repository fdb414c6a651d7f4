// Package http is the inbound HTTP adapter. It binds requests, resolves
// the caller's principal from the bearer token, and dispatches to the
// command and query handlers. All authorization decisions live in the
// core; this layer only translates errors into status codes.
package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createAgency    commands.CreateAgencyCommandHandler
	updateAgency    commands.UpdateAgencyCommandHandler
	suspendAgency   commands.SuspendAgencyCommandHandler
	unsuspendAgency commands.UnsuspendAgencyCommandHandler

	createShipment         commands.CreateShipmentCommandHandler
	createCustomerShipment commands.CreateCustomerShipmentCommandHandler
	confirmShipment        commands.ConfirmShipmentCommandHandler
	validateShipment       commands.ValidateShipmentCommandHandler
	rejectShipment         commands.RejectShipmentCommandHandler
	cancelCustomerShipment commands.CancelCustomerShipmentCommandHandler

	registerParcel      commands.RegisterParcelCommandHandler
	changeParcelStatus  commands.ChangeParcelStatusCommandHandler
	markParcelDelivered commands.MarkParcelDeliveredCommandHandler
	markParcelFailed    commands.MarkParcelFailedCommandHandler

	grantRole commands.GrantRoleCommandHandler

	getShipment        queries.GetShipmentQueryHandler
	getAgencyShipments queries.GetAgencyShipmentsQueryHandler
	trackParcel        queries.TrackParcelQueryHandler
}

// NewServer creates an HTTP server wired to the given use case handlers.
func NewServer(
	createAgency commands.CreateAgencyCommandHandler,
	updateAgency commands.UpdateAgencyCommandHandler,
	suspendAgency commands.SuspendAgencyCommandHandler,
	unsuspendAgency commands.UnsuspendAgencyCommandHandler,
	createShipment commands.CreateShipmentCommandHandler,
	createCustomerShipment commands.CreateCustomerShipmentCommandHandler,
	confirmShipment commands.ConfirmShipmentCommandHandler,
	validateShipment commands.ValidateShipmentCommandHandler,
	rejectShipment commands.RejectShipmentCommandHandler,
	cancelCustomerShipment commands.CancelCustomerShipmentCommandHandler,
	registerParcel commands.RegisterParcelCommandHandler,
	changeParcelStatus commands.ChangeParcelStatusCommandHandler,
	markParcelDelivered commands.MarkParcelDeliveredCommandHandler,
	markParcelFailed commands.MarkParcelFailedCommandHandler,
	grantRole commands.GrantRoleCommandHandler,
	getShipment queries.GetShipmentQueryHandler,
	getAgencyShipments queries.GetAgencyShipmentsQueryHandler,
	trackParcel queries.TrackParcelQueryHandler,
) *Server {
	return &Server{
		createAgency:           createAgency,
		updateAgency:           updateAgency,
		suspendAgency:          suspendAgency,
		unsuspendAgency:        unsuspendAgency,
		createShipment:         createShipment,
		createCustomerShipment: createCustomerShipment,
		confirmShipment:        confirmShipment,
		validateShipment:       validateShipment,
		rejectShipment:         rejectShipment,
		cancelCustomerShipment: cancelCustomerShipment,
		registerParcel:         registerParcel,
		changeParcelStatus:     changeParcelStatus,
		markParcelDelivered:    markParcelDelivered,
		markParcelFailed:       markParcelFailed,
		grantRole:              grantRole,
		getShipment:            getShipment,
		getAgencyShipments:     getAgencyShipments,
		trackParcel:            trackParcel,
	}
}

// RegisterRoutes attaches all routes to the echo instance. Tracking is the
// only route outside the authenticated group.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret []byte) {
	e.GET("/api/v1/tracking/:trackingNumber", s.TrackParcel)

	api := e.Group("/api/v1", AuthMiddleware(jwtSecret))

	api.POST("/agencies", s.CreateAgency)
	api.PUT("/agencies/:agencyID", s.UpdateAgency)
	api.POST("/agencies/:agencyID/suspend", s.SuspendAgency)
	api.POST("/agencies/:agencyID/unsuspend", s.UnsuspendAgency)
	api.GET("/agencies/:agencyID/shipments", s.GetAgencyShipments)

	api.POST("/shipments", s.CreateShipment)
	api.GET("/shipments/:shipmentID", s.GetShipment)
	api.POST("/shipments/:shipmentID/confirm", s.ConfirmShipment)
	api.POST("/shipments/:shipmentID/validate", s.ValidateShipment)
	api.POST("/shipments/:shipmentID/reject", s.RejectShipment)
	api.POST("/shipments/:shipmentID/parcels", s.RegisterParcel)

	api.POST("/customer/shipments", s.CreateCustomerShipment)
	api.DELETE("/customer/shipments/:shipmentID", s.CancelCustomerShipment)

	api.POST("/parcels/:parcelID/status", s.ChangeParcelStatus)
	api.POST("/parcels/:parcelID/delivered", s.MarkParcelDelivered)
	api.POST("/parcels/:parcelID/failed", s.MarkParcelFailed)

	api.POST("/users/:userID/roles", s.GrantRole)
}

type createAgencyRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Phone                string `json:"phone"`
	Address              string `json:"address"`
	MaxUsers             int    `json:"maxUsers"`
	MaxShipmentsPerMonth int    `json:"maxShipmentsPerMonth"`
}

// CreateAgency handles POST /api/v1/agencies.
func (s *Server) CreateAgency(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorBody("no principal"))
	}

	var req createAgencyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	agencyID := kernel.NewUUID()
	cmd, err := commands.NewCreateAgencyCommand(
		principal, agencyID,
		req.Name, req.Email, req.Phone, req.Address,
		req.MaxUsers, req.MaxShipmentsPerMonth,
	)
	if err != nil {
		return c.JSON(respondError(err))
	}

	if err = s.createAgency.Handle(c.Request().Context(), cmd); err != nil {
		return c.JSON(respondError(err))
	}

	return c.JSON(http.StatusCreated, map[string]string{"id": agencyID.String()})
}

type updateAgencyRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// UpdateAgency handles PUT /api/v1/agencies/:agencyID.
func (s *Server) UpdateAgency(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorBody("no principal"))
	}

	agencyID, err := kernel.UUIDFromString(c.Param("agencyID"))
	if err != nil {
		return c.JSON(respondError(err))
	}

	var req updateAgencyRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	cmd, err := commands.NewUpdateAgencyCommand(principal, agencyID, req.Name, req.Email, req.Phone, req.Address)
	if err != nil {
		return c.JSON(respondError(err))
	}

	if err = s.updateAgency.Handle(c.Request().Context(), cmd); err != nil {
		return c.JSON(respondError(err))
	}

	return c.NoContent(http.StatusNoContent)
}

type suspendAgencyRequest struct {
	Reason string `json:"reason"`
}

// SuspendAgency handles POST /api/v1/agencies/:agencyID/suspend.
func (s *Server) SuspendAgency(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorBody("no principal"))
	}

	agencyID, err := kernel.UUIDFromString(c.Param("agencyID"))
	if err != nil {
		return c.JSON(respondError(err))
	}

	var req suspendAgencyRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	cmd, err := commands.NewSuspendAgencyCommand(principal, agencyID, req.Reason)
	if err != nil {
		return c.JSON(respondError(err))
	}

	if err = s.suspendAgency.Handle(c.Request().Context(), cmd); err != nil {
		return c.JSON(respondError(err))
	}

	return c.NoContent(http.StatusNoContent)
}

// UnsuspendAgency handles POST /api/v1/agencies/:agencyID/unsuspend.
func (s *Server) UnsuspendAgency(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorBody("no principal"))
	}

	agencyID, err := kernel.UUIDFromString(c.Param("agencyID"))
	if err != nil {
		return c.JSON(respondError(err))
	}

	cmd, err := commands.NewUnsuspendAgencyCommand(principal, agencyID)
	if err != nil {
		return c.JSON(respondError(err))
	}

	if err = s.unsuspendAgency.Handle(c.Request().Context(), cmd); err != nil {
		return c.JSON(respondError(err))
	}

	return c.NoContent(http.StatusNoContent)
}

type createShipmentRequest struct {
	AgencyID    string `json:"agencyId"`
	Description string `json:"description"`
}

// CreateShipment handles POST /api/v1/shipments, the employee creation
// path.
func (s *Server) CreateShipment(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorBody("no principal"))
	}

	var req createShipmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	agencyID, err := kernel.UUIDFromString(req.AgencyID)
	if err != nil {
		return c.JSON(respondError(err))
	}

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(principal, shipmentID, agencyID, req.Description)
	if err != nil {
		return c.JSON(respondError(err))
	}

	if err = s.createShipment.Handle(c.Request().Context(), cmd); err != nil {
		return c.JSON(respondError(err))
	}

	return c.JSON(http.StatusCreated, map[string]string{"id": shipmentID.String()})
}

type createCustomerShipmentRequest struct {
	AgencyID         string `json:"agencyId"`
	PickupLocationID string `json:"pickupLocationId"`
	Description      string `json:"description"`
}

// CreateCustomerShipment handles POST /api/v1/customer/shipments.
func (s *Server) CreateCustomerShipment(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorBody("no principal"))
	}

	var req createCustomerShipmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	agencyID, err := kernel.UUIDFromString(req.AgencyID)
	if err != nil {
		return c.JSON(respondError(err))
	}
	pickupLocationID, err := kernel.UUIDFromString(req.PickupLocationID)
	if err != nil {
		return c.JSON(respondError(err))
	}

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateCustomerShipmentCommand(principal, shipmentID, agencyID, pickupLocationID, req.Description)
	if err != nil {
		return c.JSON(respondError(err))
	}

	if err = s.createCustomerShipment.Handle(c.Request().Context(), cmd); err != nil {
		return c.JSON(respondError(err))
	}

	return c.JSON(http.StatusCreated, map[string]string{"id": shipmentID.String()})
}

// ConfirmShipment handles POST /api/v1/shipments/:shipmentID/confirm.
func (s *Server) ConfirmShipment(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorBody("no principal"))
	}

	shipmentID, err := kernel.UUIDFromString(c.Param("shipmentID"))
	if err != nil {
		return c.JSON(respondError(err))
	}

	cmd, err := commands.NewConfirmShipmentCommand(principal, shipmentID)
	if err != nil {
		return c.JSON(respondError(err))
	}

	if err = s.confirmShipment.Handle(c.Request().Context(), cmd); err != nil {
		return c.JSON(respondError(err))
	}

	return c.NoContent(http.StatusNoContent)
}

// ValidateShipment handles POST /api/v1/shipments/:shipmentID/validate.
func (s *Server) ValidateShipment(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorBody("no principal"))
	}

	shipmentID, err := kernel.UUIDFromString(c.Param("shipmentID"))
	if err != nil {
		return c.JSON(respondError(err))
	}

	cmd, err := commands.NewValidateShipmentCommand(principal, shipmentID)
	if err != nil {
		return c.JSON(respondError(err))
	}

	if err = s.validateShipment.Handle(c.Request().Context(), cmd); err != nil {
		return c.JSON(respondError(err))
	}

	return c.NoContent(http.StatusNoContent)
}

type rejectShipmentRequest struct {
	Reason string `json:"reason"`
}

// RejectShipment handles POST /api/v1/shipments/:shipmentID/reject.
func (s *Server) RejectShipment(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorBody("no principal"))
	}

	shipmentID, err := kernel.UUIDFromString(c.Param("shipmentID"))
	if err != nil {
		return c.JSON(respondError(err))
	}

	var req rejectShipmentRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	cmd, err := commands.NewRejectShipmentCommand(principal, shipmentID, req.Reason)
	if err != nil {
		return c.JSON(respondError(err))
	}

	if err = s.rejectShipment.Handle(c.Request().Context(), cmd); err != nil {
		return c.JSON(respondError(err))
	}

	return c.NoContent(http.StatusNoContent)
}

// CancelCustomerShipment handles DELETE /api/v1/customer/shipments/:shipmentID.
func (s *Server) CancelCustomerShipment(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorBody("no principal"))
	}

	shipmentID, err := kernel.UUIDFromString(c.Param("shipmentID"))
	if err != nil {
		return c.JSON(respondError(err))
	}

	cmd, err := commands.NewCancelCustomerShipmentCommand(principal, shipmentID)
	if err != nil {
		return c.JSON(respondError(err))
	}

	if err = s.cancelCustomerShipment.Handle(c.Request().Context(), cmd); err != nil {
		return c.JSON(respondError(err))
	}

	return c.NoContent(http.StatusNoContent)
}

type registerParcelRequest struct {
	Description string `json:"description"`
}

// RegisterParcel handles POST /api/v1/shipments/:shipmentID/parcels.
func (s *Server) RegisterParcel(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorBody("no principal"))
	}

	shipmentID, err := kernel.UUIDFromString(c.Param("shipmentID"))
	if err != nil {
		return c.JSON(respondError(err))
	}

	var req registerParcelRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	parcelID := kernel.NewUUID()
	cmd, err := commands.NewRegisterParcelCommand(principal, parcelID, shipmentID, req.Description)
	if err != nil {
		return c.JSON(respondError(err))
	}

	if err = s.registerParcel.Handle(c.Request().Context(), cmd); err != nil {
		return c.JSON(respondError(err))
	}

	return c.JSON(http.StatusCreated, map[string]string{"id": parcelID.String()})
}

type changeParcelStatusRequest struct {
	Status     string `json:"status"`
	LocationID string `json:"locationId"`
}

// ChangeParcelStatus handles POST /api/v1/parcels/:parcelID/status.
func (s *Server) ChangeParcelStatus(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorBody("no principal"))
	}

	parcelID, err := kernel.UUIDFromString(c.Param("parcelID"))
	if err != nil {
		return c.JSON(respondError(err))
	}

	var req changeParcelStatusRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	toStatus, err := parcelStatusFromRequest(req.Status)
	if err != nil {
		return c.JSON(respondError(err))
	}
	locationID, err := optionalUUIDFromRequest(req.LocationID)
	if err != nil {
		return c.JSON(respondError(err))
	}

	cmd, err := commands.NewChangeParcelStatusCommand(principal, parcelID, toStatus, locationID)
	if err != nil {
		return c.JSON(respondError(err))
	}

	if err = s.changeParcelStatus.Handle(c.Request().Context(), cmd); err != nil {
		return c.JSON(respondError(err))
	}

	return c.NoContent(http.StatusNoContent)
}

type markParcelDeliveredRequest struct {
	ReceivedBy string `json:"receivedBy"`
	LocationID string `json:"locationId"`
}

// MarkParcelDelivered handles POST /api/v1/parcels/:parcelID/delivered.
func (s *Server) MarkParcelDelivered(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorBody("no principal"))
	}

	parcelID, err := kernel.UUIDFromString(c.Param("parcelID"))
	if err != nil {
		return c.JSON(respondError(err))
	}

	var req markParcelDeliveredRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	locationID, err := optionalUUIDFromRequest(req.LocationID)
	if err != nil {
		return c.JSON(respondError(err))
	}

	cmd, err := commands.NewMarkParcelDeliveredCommand(principal, parcelID, req.ReceivedBy, locationID)
	if err != nil {
		return c.JSON(respondError(err))
	}

	if err = s.markParcelDelivered.Handle(c.Request().Context(), cmd); err != nil {
		return c.JSON(respondError(err))
	}

	return c.NoContent(http.StatusNoContent)
}

type markParcelFailedRequest struct {
	Reason string `json:"reason"`
}

// MarkParcelFailed handles POST /api/v1/parcels/:parcelID/failed.
func (s *Server) MarkParcelFailed(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorBody("no principal"))
	}

	parcelID, err := kernel.UUIDFromString(c.Param("parcelID"))
	if err != nil {
		return c.JSON(respondError(err))
	}

	var req markParcelFailedRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	cmd, err := commands.NewMarkParcelFailedCommand(principal, parcelID, req.Reason)
	if err != nil {
		return c.JSON(respondError(err))
	}

	if err = s.markParcelFailed.Handle(c.Request().Context(), cmd); err != nil {
		return c.JSON(respondError(err))
	}

	return c.NoContent(http.StatusNoContent)
}

type grantRoleRequest struct {
	RoleCode string `json:"roleCode"`
}

// GrantRole handles POST /api/v1/users/:userID/roles.
func (s *Server) GrantRole(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorBody("no principal"))
	}

	userID, err := kernel.UUIDFromString(c.Param("userID"))
	if err != nil {
		return c.JSON(respondError(err))
	}

	var req grantRoleRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	cmd, err := commands.NewGrantRoleCommand(principal, userID, req.RoleCode)
	if err != nil {
		return c.JSON(respondError(err))
	}

	if err = s.grantRole.Handle(c.Request().Context(), cmd); err != nil {
		return c.JSON(respondError(err))
	}

	return c.NoContent(http.StatusNoContent)
}

type shipmentResponse struct {
	ID              string  `json:"id"`
	AgencyID        string  `json:"agencyId"`
	ShipmentNumber  string  `json:"shipmentNumber"`
	Status          string  `json:"status"`
	Description     string  `json:"description"`
	CustomerID      *string `json:"customerId,omitempty"`
	RejectionReason string  `json:"rejectionReason,omitempty"`
	ParcelCount     int64   `json:"parcelCount"`
	CreatedAt       string  `json:"createdAt"`
}

// GetShipment handles GET /api/v1/shipments/:shipmentID.
func (s *Server) GetShipment(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorBody("no principal"))
	}

	shipmentID, err := kernel.UUIDFromString(c.Param("shipmentID"))
	if err != nil {
		return c.JSON(respondError(err))
	}

	query, err := queries.NewGetShipmentQuery(principal, shipmentID)
	if err != nil {
		return c.JSON(respondError(err))
	}

	result, err := s.getShipment.Handle(c.Request().Context(), query)
	if err != nil {
		return c.JSON(respondError(err))
	}

	return c.JSON(http.StatusOK, shipmentResponse{
		ID:              result.ID.String(),
		AgencyID:        result.AgencyID.String(),
		ShipmentNumber:  result.ShipmentNumber,
		Status:          result.Status,
		Description:     result.Description,
		CustomerID:      optionalUUIDString(result.CustomerID),
		RejectionReason: result.RejectionReason,
		ParcelCount:     result.ParcelCount,
		CreatedAt:       result.CreatedAt.Format(timeFormat),
	})
}

type agencyShipmentResponse struct {
	ID             string  `json:"id"`
	ShipmentNumber string  `json:"shipmentNumber"`
	Status         string  `json:"status"`
	Description    string  `json:"description"`
	CustomerID     *string `json:"customerId,omitempty"`
	ParcelCount    int64   `json:"parcelCount"`
}

// GetAgencyShipments handles GET /api/v1/agencies/:agencyID/shipments.
// An optional status query parameter narrows the listing.
func (s *Server) GetAgencyShipments(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorBody("no principal"))
	}

	agencyID, err := kernel.UUIDFromString(c.Param("agencyID"))
	if err != nil {
		return c.JSON(respondError(err))
	}

	var status *shipment.Status
	if raw := c.QueryParam("status"); raw != "" {
		parsed, parseErr := shipment.StatusFromString(raw)
		if parseErr != nil {
			return c.JSON(respondError(parseErr))
		}
		status = &parsed
	}

	query, err := queries.NewGetAgencyShipmentsQuery(principal, agencyID, status)
	if err != nil {
		return c.JSON(respondError(err))
	}

	results, err := s.getAgencyShipments.Handle(c.Request().Context(), query)
	if err != nil {
		return c.JSON(respondError(err))
	}

	response := make([]agencyShipmentResponse, 0, len(results))
	for _, result := range results {
		response = append(response, agencyShipmentResponse{
			ID:             result.ID.String(),
			ShipmentNumber: result.ShipmentNumber,
			Status:         result.Status,
			Description:    result.Description,
			CustomerID:     optionalUUIDString(result.CustomerID),
			ParcelCount:    result.ParcelCount,
		})
	}

	return c.JSON(http.StatusOK, response)
}

type trackingResponse struct {
	TrackingNumber  string  `json:"trackingNumber"`
	Status          string  `json:"status"`
	CurrentLocation string  `json:"currentLocation,omitempty"`
	LastScanAt      *string `json:"lastScanAt,omitempty"`
	DeliveredAt     *string `json:"deliveredAt,omitempty"`
	ReceivedBy      string  `json:"receivedBy,omitempty"`
}

// TrackParcel handles GET /api/v1/tracking/:trackingNumber. Public.
func (s *Server) TrackParcel(c echo.Context) error {
	query, err := queries.NewTrackParcelQuery(c.Param("trackingNumber"))
	if err != nil {
		return c.JSON(respondError(err))
	}

	result, err := s.trackParcel.Handle(c.Request().Context(), query)
	if err != nil {
		return c.JSON(respondError(err))
	}

	return c.JSON(http.StatusOK, trackingResponse{
		TrackingNumber:  result.TrackingNumber,
		Status:          result.Status,
		CurrentLocation: result.CurrentLocation,
		LastScanAt:      optionalTimeString(result.LastScanAt),
		DeliveredAt:     optionalTimeString(result.DeliveredAt),
		ReceivedBy:      result.ReceivedBy,
	})
}
