package task

import (
	"time"

	"github.com/google/uuid"
)

// Task - единица работы. Всегда принадлежит ровно одному проекту и
// одному владельцу, ссылается на приоритет и состояние из справочников.
// Инвариант: Completed == true тогда и только тогда, когда CompletedAt != nil.
type Task struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	OwnerID     uuid.UUID  `json:"owner_id" db:"owner_id"`
	ProjectID   uuid.UUID  `json:"project_id" db:"project_id"`
	PriorityID  uuid.UUID  `json:"priority_id" db:"priority_id"`
	ConditionID uuid.UUID  `json:"condition_id" db:"condition_id"`
	Completed   bool       `json:"completed" db:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}

const MaxTitleLen = 100
