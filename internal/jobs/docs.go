// Package jobs provides scheduled background tasks for the order desk.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. DispatchExpiryJob - Runs every minute to discard pending dispatch
// status changes that were never confirmed within the configured TTL.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(expireHandler, ttl, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
