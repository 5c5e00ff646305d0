package task

import "github.com/google/uuid"

// TaskOption - частичное обновление: применяются только переданные поля.
// CreatedAt, Completed и CompletedAt опциями не меняются, их выставляет
// только операция complete.
type TaskOption func(*Task)

func WithTitle(title string) TaskOption {
	return func(t *Task) {
		t.Title = title
	}
}

func WithDescription(description string) TaskOption {
	return func(t *Task) {
		t.Description = description
	}
}

func WithProject(projectID uuid.UUID) TaskOption {
	if projectID == uuid.Nil {
		return nil
	}
	return func(t *Task) {
		t.ProjectID = projectID
	}
}

func WithPriority(priorityID uuid.UUID) TaskOption {
	if priorityID == uuid.Nil {
		return nil
	}
	return func(t *Task) {
		t.PriorityID = priorityID
	}
}

func WithCondition(conditionID uuid.UUID) TaskOption {
	if conditionID == uuid.Nil {
		return nil
	}
	return func(t *Task) {
		t.ConditionID = conditionID
	}
}
