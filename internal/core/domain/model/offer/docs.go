// Package offer contains the DeliveryOffer aggregate: one courier's proposed
// terms against a delivery request, including counter-offers that reference
// the offer they answer.
//
// The status machine is monotonic - Pending is the only state with outgoing
// transitions. Cross-row guarantees (exactly one accepted offer per request,
// sibling mass-rejection on acceptance) are enforced by conditional updates
// in the persistence adapters, not by this package.
package offer
