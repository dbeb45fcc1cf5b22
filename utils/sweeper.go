package utils

import (
	"fmt"
	"log"
	"time"

	"lms/database"
	courseModels "lms/models/course"

	"github.com/robfig/cron/v3"
)

// logSweeper logs sweeper events with timestamp
func logSweeper(message string) {
	log.Printf("[ENROLLMENT-SWEEPER %s] %s", time.Now().Format(time.RFC3339), message)
}

// SweepOrphanedEnrollments deletes enrollments whose content row no longer
// exists. Content and module deletion cascade in a transaction, so normally
// there is nothing to sweep; this catches rows left behind by older data or
// a crash between statements.
func SweepOrphanedEnrollments() {
	db := database.Database.Db

	contentIDs := db.Model(&courseModels.InstructorContent{}).Select("id")
	res := db.Where("content_id NOT IN (?)", contentIDs).Delete(&courseModels.Enrollment{})
	if res.Error != nil {
		logSweeper("Error sweeping orphaned enrollments: " + res.Error.Error())
		return
	}

	if res.RowsAffected > 0 {
		logSweeper(fmt.Sprintf("Removed %d orphaned enrollments", res.RowsAffected))
	}
}

// StartEnrollmentSweeper schedules the nightly orphaned-enrollment sweep.
func StartEnrollmentSweeper() *cron.Cron {
	c := cron.New()
	if _, err := c.AddFunc("0 3 * * *", SweepOrphanedEnrollments); err != nil {
		log.Printf("Failed to schedule enrollment sweeper: %v", err)
		return c
	}
	c.Start()
	logSweeper("Scheduled nightly orphaned-enrollment sweep (03:00)")
	return c
}
