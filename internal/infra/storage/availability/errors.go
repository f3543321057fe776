package availability

import "errors"

var (
	// ErrSlotNotFound возвращается, когда строка доступности не найдена
	ErrSlotNotFound = errors.New("availability.repository: slot not found")

	// ErrCapacityExhausted возвращается, когда в слоте не осталось свободных киосков
	ErrCapacityExhausted = errors.New("availability.repository: slot capacity exhausted")

	// ErrAlreadyAtCapacity возвращается при попытке release слота, где все киоски уже свободны
	ErrAlreadyAtCapacity = errors.New("availability.repository: slot already at full capacity")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	// Признак недоступности хранилища, а не отсутствия данных
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("availability.repository: failed to scan row")
)
