package memtxmanager

import (
	"context"
	"sync"
)

// TransactionManager сериализует операции над общим in-memory состоянием.
// Аналог транзакционного менеджера БД для хранилищ в памяти: DoSerializable
// берёт эксклюзивную блокировку на всё состояние, DoReadOnly - разделяемую.
// Один экземпляр охраняет пару пул + реестр талонов; сами они блокировок
// не выполняют.
type TransactionManager struct {
	mu sync.RWMutex
}

// NewTransactionManager создает новый менеджер транзакций.
func NewTransactionManager() *TransactionManager {
	return &TransactionManager{}
}

// Do выполняет fn под эксклюзивной блокировкой.
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.DoSerializable(ctx, fn)
}

// DoSerializable выполняет fn под эксклюзивной блокировкой: никакая другая
// операция не наблюдает промежуточное состояние fn.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return fn(ctx)
}

// DoReadOnly выполняет fn под разделяемой блокировкой. Читатели не блокируют
// друг друга, но сериализуются относительно DoSerializable.
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return fn(ctx)
}
