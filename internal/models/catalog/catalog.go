package catalog

import "github.com/google/uuid"

// Справочные таблицы приоритетов и состояний.
// Записи загружаются сидом при миграции и дальше только читаются.

type Priority struct {
	ID    uuid.UUID `json:"id" db:"id"`
	Label string    `json:"label" db:"label"`
}

type Condition struct {
	ID    uuid.UUID `json:"id" db:"id"`
	Label string    `json:"label" db:"label"`
}

// Метки состояний, на которые опирается бизнес-логика.
// ConditionCompleted выставляется операцией complete,
// ConditionPending - состояние по умолчанию при создании задачи.
const (
	ConditionPending    = "Pending"
	ConditionInProgress = "In Progress"
	ConditionCompleted  = "Completed"
)

const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)
