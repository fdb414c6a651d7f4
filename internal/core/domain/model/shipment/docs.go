// Package shipment contains the Shipment aggregate and its lifecycle state
// machine.
//
// Two creation paths exist with different initial states: shipments created
// by agency employees start Open, shipments created by customers start
// PendingValidation and additionally carry the customer id and the chosen
// pickup location. Status transitions are validated by the Status value
// object; the aggregate stamps validation metadata and enforces the
// parcel-attachment cutoff at confirmation.
package shipment
