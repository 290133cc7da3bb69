// Package kernel contains shared value objects used across the domain model.
// These are immutable, self-validating building blocks: UUID identifiers for
// requests, offers and participants, and Price for monetary amounts.
//
// Kernel types follow Domain-Driven Design value object principles:
// constructed only through validating factories, compared by value, and safe
// for concurrent use.
package kernel
