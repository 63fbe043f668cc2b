// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around order processing.
//
// # Available Jobs
//
// 1. PendingOrdersJob - Runs every minute to report the number of orders still pending
//
// # Usage
//
//	job := jobs.NewPendingOrdersJob(pendingOrderCountHandler, logger)
//
//	if err := job.Start(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer job.Stop()
//
// # Error Handling
//
// The pending orders job logs query failures and keeps running. A failed tick
// never stops the schedule.
package jobs
