package course

import "time"

// AdminContent is a library item owned by the platform. Instructors never
// edit these directly; attaching one to a module produces an independent
// InstructorContent copy.
type AdminContent struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	VideoURL    string    `json:"video_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
