package results

import (
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/lifeinuk-quiz/internal/quiz"
	"gorm.io/datatypes"
)

// Handoff carries a finished session's outcome to the results view. It can be
// taken once; the review export stays available until it expires.
type Handoff struct {
	ID         uuid.UUID      `gorm:"type:varchar(36);primaryKey" json:"id"`
	Mode       quiz.Mode      `gorm:"type:varchar(20);not null" json:"mode"`
	ExamNumber int            `gorm:"not null;default:0" json:"exam_number"`
	Payload    datatypes.JSON `gorm:"not null" json:"payload"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	ExpiresAt  time.Time      `gorm:"not null;index" json:"expires_at"`
	TakenAt    *time.Time     `json:"taken_at,omitempty"`
}

func (Handoff) TableName() string {
	return "result_handoffs"
}
