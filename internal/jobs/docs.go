// Package jobs provides scheduled background tasks for the matching engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic operations the negotiation lifecycle requires.
//
// # Available Jobs
//
// 1. ExpirySweepJob - Periodically expires pending offers and open requests
// whose persisted validity deadlines have passed.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(sweepHandler, sweepIntervalSeconds, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweep runs on an "@every Ns" schedule. The interval is a freshness
// bound, not a correctness requirement: deadlines are evaluated against the
// store on every pass, so nothing is lost between runs or across restarts.
//
// # Error Handling
//
// A failing sweep pass is logged and retried on the next tick. Within a pass,
// per-row transition failures are logged and skipped by the handler so one
// bad row cannot stall the rest.
package jobs
