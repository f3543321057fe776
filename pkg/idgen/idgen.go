package idgen

import "github.com/google/uuid"

// Generator генератор непрозрачных уникальных идентификаторов транзакций
// Используется для квитанций об отмене бронирования
type Generator struct{}

// New создает новый генератор
func New() *Generator {
	return &Generator{}
}

// TransactionID возвращает новый уникальный идентификатор транзакции
func (g *Generator) TransactionID() string {
	return uuid.NewString()
}
