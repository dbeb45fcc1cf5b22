package utils_test

import (
	"fmt"
	"strings"
	"testing"

	"lms/database"
	courseModels "lms/models/course"
	"lms/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestSweepOrphanedEnrollments(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	module := courseModels.Module{Title: "Endoscopy Basics", InstructorID: 1}
	require.NoError(t, db.Create(&module).Error)
	content := courseModels.InstructorContent{ModuleID: module.ID, Title: "Scope Handling"}
	require.NoError(t, db.Create(&content).Error)

	live := courseModels.Enrollment{ContentID: content.ID, TraineeID: 7}
	require.NoError(t, db.Create(&live).Error)
	orphan := courseModels.Enrollment{ContentID: content.ID + 100, TraineeID: 7}
	require.NoError(t, db.Create(&orphan).Error)

	utils.SweepOrphanedEnrollments()

	var remaining []courseModels.Enrollment
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, live.ID, remaining[0].ID)
}

func TestStartEnrollmentSweeper(t *testing.T) {
	c := utils.StartEnrollmentSweeper()
	require.NotNil(t, c)
	defer c.Stop()

	// One scheduled entry, the nightly sweep
	assert.Len(t, c.Entries(), 1)
}
