// Package request contains the DeliveryRequest aggregate and its status
// state machine. A request is a customer's standing ask for a courier to
// fulfill a pickup/drop-off; couriers negotiate against it through offers.
//
// The aggregate enforces construction invariants; the single-winner
// acceptance invariant spans rows and is enforced by the conditional status
// updates in the persistence adapters.
package request
