// Package services contains stateless domain services that implement business
// rules spanning multiple aggregates. The OfferValidator checks candidate
// offers against their request and sibling offers without side effects, so
// the rules stay trivially unit-testable.
package services
