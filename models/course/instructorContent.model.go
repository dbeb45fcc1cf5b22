package course

import "time"

// InstructorContent is a content item inside a module. AdminContentID points
// back at the library item it was copied from; it is nullable because ad-hoc
// content has no library origin. The composite unique index rejects attaching
// the same library item to the same module twice.
type InstructorContent struct {
	ID             uint      `json:"id" gorm:"primarykey"`
	ModuleID       uint      `json:"module_id" gorm:"not null;uniqueIndex:idx_module_admin_content"`
	Title          string    `json:"title" gorm:"not null"`
	Description    string    `json:"description"`
	Image          string    `json:"image"`
	Video          string    `json:"video"`
	AdminContentID *uint     `json:"admin_content_id" gorm:"uniqueIndex:idx_module_admin_content"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
