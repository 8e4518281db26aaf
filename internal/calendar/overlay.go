package calendar

import (
	"sync"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Overlay оптимистичные изменения календаря, еще не подтвержденные сервером
// Блокировка и разблокировка одного слота взаимоисключающие
type Overlay struct {
	mu        sync.RWMutex
	blocked   map[domain.SlotKey]struct{}
	unblocked map[domain.SlotKey]struct{}
}

// NewOverlay создает пустой оверлей
func NewOverlay() *Overlay {
	return &Overlay{
		blocked:   make(map[domain.SlotKey]struct{}),
		unblocked: make(map[domain.SlotKey]struct{}),
	}
}

// MarkBlocked помечает слот как предварительно заблокированный
// Возвращает функцию отката к предыдущему состоянию слота
func (o *Overlay) MarkBlocked(slot domain.TimeSlot) (rollback func()) {
	return o.mark(slot.Key(), o.blocked, o.unblocked)
}

// MarkUnblocked помечает слот как предварительно разблокированный
func (o *Overlay) MarkUnblocked(slot domain.TimeSlot) (rollback func()) {
	return o.mark(slot.Key(), o.unblocked, o.blocked)
}

func (o *Overlay) mark(key domain.SlotKey, set, opposite map[domain.SlotKey]struct{}) func() {
	o.mu.Lock()
	defer o.mu.Unlock()

	_, wasSet := set[key]
	_, wasOpposite := opposite[key]

	set[key] = struct{}{}
	delete(opposite, key)

	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()

		if !wasSet {
			delete(set, key)
		}
		if wasOpposite {
			opposite[key] = struct{}{}
		}
	}
}

// IsBlocked true, если слот предварительно заблокирован
func (o *Overlay) IsBlocked(slot domain.TimeSlot) bool {
	if o == nil {
		return false
	}
	o.mu.RLock()
	defer o.mu.RUnlock()
	_, ok := o.blocked[slot.Key()]
	return ok
}

// IsUnblocked true, если слот предварительно разблокирован
func (o *Overlay) IsUnblocked(slot domain.TimeSlot) bool {
	if o == nil {
		return false
	}
	o.mu.RLock()
	defer o.mu.RUnlock()
	_, ok := o.unblocked[slot.Key()]
	return ok
}

// Len количество слотов с предварительными изменениями
func (o *Overlay) Len() int {
	if o == nil {
		return 0
	}
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.blocked) + len(o.unblocked)
}

// Reset сбрасывает оверлей после загрузки авторитетного состояния
func (o *Overlay) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.blocked = make(map[domain.SlotKey]struct{})
	o.unblocked = make(map[domain.SlotKey]struct{})
}
