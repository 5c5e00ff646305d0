package project

import (
	"time"

	"github.com/google/uuid"
)

// Project - контейнер задач. Владелец не хранится в самой сущности:
// авторизация привязана к задачам, а не к проектам.
type Project struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

const MaxTitleLen = 100
