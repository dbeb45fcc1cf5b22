package models

import "time"

// Roles recognised by the platform.
const (
	RoleAdmin      = "admin"
	RoleInstructor = "instructor"
	RoleTrainee    = "trainee"
)

// DefaultAvatar is assigned to every new account until a picture is uploaded.
const DefaultAvatar = "/uploads/default/default-avatar.png"

type User struct {
	ID             uint      `json:"id" gorm:"primarykey"`
	FirstName      string    `json:"first_name" gorm:"not null"`
	LastName       string    `json:"last_name" gorm:"not null"`
	Email          string    `json:"email" gorm:"uniqueIndex;not null"`
	Password       string    `json:"-" gorm:"not null"`
	Role           string    `json:"role" gorm:"not null"` // admin, instructor, trainee
	Title          string    `json:"title"`                // instructor honorific, e.g. "Dr."
	TraineeID      *string   `json:"trainee_id"`           // set iff Role == trainee, e.g. "NHIS/T/4821"
	ProfilePicture string    `json:"profile_picture" gorm:"default:'/uploads/default/default-avatar.png'"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
