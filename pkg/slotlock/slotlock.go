package slotlock

import (
	"hash/fnv"
	"sync"
)

// Количество шардов таблицы блокировок
// Степень двойки, чтобы брать остаток битовой маской
const defaultShards = 64

// Guard шардированная таблица мьютексов, сериализующая операции над одним слотом
// Ключом служит строковое представление (centerId, date, fromTime, toTime)
// Операции над разными слотами из разных шардов не упорядочены между собой
type Guard struct {
	shards [defaultShards]sync.Mutex
}

// NewGuard создает новую таблицу блокировок
func NewGuard() *Guard {
	return &Guard{}
}

// Lock захватывает блокировку для ключа слота
// Держать её можно только на время read-check-write счётчика,
// внешние вызовы под блокировкой делать нельзя
func (g *Guard) Lock(key string) {
	g.shards[shardIndex(key)].Lock()
}

// Unlock освобождает блокировку для ключа слота
func (g *Guard) Unlock(key string) {
	g.shards[shardIndex(key)].Unlock()
}

// WithLock выполняет fn под блокировкой слота
func (g *Guard) WithLock(key string, fn func() error) error {
	g.Lock(key)
	defer g.Unlock(key)
	return fn()
}

func shardIndex(key string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(key))
	return h.Sum32() & (defaultShards - 1)
}
