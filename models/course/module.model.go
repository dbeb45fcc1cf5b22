package course

import "time"

// Module is an instructor-owned grouping of content items. Its children are
// the InstructorContent rows referencing it; deleting a module removes the
// children first (application-level cascade, see controllers/course).
type Module struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	Title        string    `json:"title" gorm:"not null"`
	InstructorID uint      `json:"instructor_id" gorm:"index;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
