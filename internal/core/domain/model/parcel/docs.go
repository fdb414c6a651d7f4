// Package parcel contains the Parcel aggregate and its lifecycle state
// machine.
//
// A parcel belongs to exactly one agency and exactly one shipment, but keeps
// a lifecycle independent of its shipment's. Transitions follow a strict
// table; self-transitions are always rejected, Delivered and Returned are
// terminal, and every successful transition stamps the last scan time and
// current location.
package parcel
