package repository

import "errors"

// Сигнальные ошибки хранилища. Сервисный слой переводит их
// в бизнес-ошибки со своими кодами.
var (
	ErrNotFound  = errors.New("запись не найдена")
	ErrIntegrity = errors.New("нарушение ограничения целостности")
)
