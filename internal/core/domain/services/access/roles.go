package access

// Agency-scoped role codes the policies evaluate against.
const (
	// RoleAgencyAdmin administers its agency: details, locations, users,
	// and every operational permission below.
	RoleAgencyAdmin = "AGENCY_ADMIN"

	// RoleShipmentManager creates, modifies, validates, and rejects
	// shipments for its agency.
	RoleShipmentManager = "SHIPMENT_MANAGER"

	// RoleParcelOperator registers parcels and records scan transitions.
	RoleParcelOperator = "PARCEL_OPERATOR"

	// RoleLocationManager manages the agency's location network.
	RoleLocationManager = "LOCATION_MANAGER"
)
