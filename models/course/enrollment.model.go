package course

import "time"

// Enrollment subscribes one trainee to one content item. The composite unique
// index is the authority on the one-enrollment-per-(content, trainee) rule;
// the handler check on top of it only produces the friendlier message.
type Enrollment struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	ContentID uint      `json:"content_id" gorm:"not null;uniqueIndex:idx_content_trainee"`
	TraineeID uint      `json:"trainee_id" gorm:"not null;uniqueIndex:idx_content_trainee"`
	CreatedAt time.Time `json:"created_at"`
}
