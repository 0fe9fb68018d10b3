// Package memory implementa los puertos de repositorio en memoria.
// Se usa en tests de casos de uso y de handlers, y con STORAGE_DRIVER=memory para demos locales.
// Emula los índices únicos del store Mongo (ErrDuplicate) y el orden por inserción.
package memory

import (
	"strings"
	"sync"
	"time"

	"golang.org/x/text/cases"

	"github.com/jhoicas/marketplace-admin-api/internal/domain"
)

// Store agrupa las colecciones en memoria.
type Store struct {
	accounts *AccountRepository
	products *ProductRepository
	orders   *OrderRepository
	tasks    *TaskRepository
	users    *UserRepository
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		accounts: NewAccountRepository(),
		products: NewProductRepository(),
		orders:   NewOrderRepository(),
		tasks:    NewTaskRepository(),
		users:    NewUserRepository(),
	}
}

func (s *Store) Accounts() *AccountRepository { return s.accounts }
func (s *Store) Products() *ProductRepository { return s.products }
func (s *Store) Orders() *OrderRepository     { return s.orders }
func (s *Store) Tasks() *TaskRepository       { return s.tasks }
func (s *Store) Users() *UserRepository       { return s.users }

// Close no hace nada; existe para que main trate ambos drivers igual.
func (s *Store) Close() error { return nil }

// table colección genérica protegida por RWMutex. Las filas se clonan al entrar y al salir
// para que nadie modifique el estado guardado por fuera de replace/mutate.
type table[T any] struct {
	mu    sync.RWMutex
	rows  map[string]*T
	order []string
	id    func(*T) string
	clone func(*T) *T
	// conflict devuelve el nombre del campo único que choca entre a y b, o "".
	conflict func(a, b *T) string
}

func newTable[T any](id func(*T) string, clone func(*T) *T, conflict func(a, b *T) string) *table[T] {
	return &table[T]{rows: make(map[string]*T), id: id, clone: clone, conflict: conflict}
}

// checkUnique debe llamarse con el lock tomado.
func (t *table[T]) checkUnique(row *T) error {
	if t.conflict == nil {
		return nil
	}
	rowID := t.id(row)
	for id, existing := range t.rows {
		if id == rowID {
			continue
		}
		if field := t.conflict(row, existing); field != "" {
			return domain.Duplicate(field)
		}
	}
	return nil
}

func (t *table[T]) insert(row *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.id(row)
	if _, ok := t.rows[id]; ok {
		return domain.Duplicate("id")
	}
	if err := t.checkUnique(row); err != nil {
		return err
	}
	t.rows[id] = t.clone(row)
	t.order = append(t.order, id)
	return nil
}

func (t *table[T]) get(id string) *T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	row, ok := t.rows[id]
	if !ok {
		return nil
	}
	return t.clone(row)
}

// first primera fila (en orden de inserción) que cumple pred.
func (t *table[T]) first(pred func(*T) bool) *T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, id := range t.order {
		if row := t.rows[id]; pred(row) {
			return t.clone(row)
		}
	}
	return nil
}

// replace reemplaza la fila guardada. keep, si no es nil, copia de la fila guardada a la
// nueva los campos que sólo escriben otras operaciones (logs, lastSync, lastLogin).
func (t *table[T]) replace(row *T, keep func(stored, next *T)) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.id(row)
	stored, ok := t.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	if err := t.checkUnique(row); err != nil {
		return err
	}
	next := t.clone(row)
	if keep != nil {
		keep(stored, next)
	}
	t.rows[id] = next
	return nil
}

// mutate aplica fn sobre la fila guardada de forma atómica.
func (t *table[T]) mutate(id string, fn func(*T)) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	row, ok := t.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	fn(row)
	return nil
}

func (t *table[T]) remove(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(t.rows, id)
	for i, oid := range t.order {
		if oid == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return nil
}

// filter filas que cumplen pred, en orden de inserción. Nunca devuelve nil.
func (t *table[T]) filter(pred func(*T) bool) []*T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]*T, 0, len(t.order))
	for _, id := range t.order {
		if row := t.rows[id]; pred == nil || pred(row) {
			out = append(out, t.clone(row))
		}
	}
	return out
}

// paginate corta rows según offset/limit. total es len(rows).
func paginate[T any](rows []*T, offset, limit int) ([]*T, int64) {
	total := int64(len(rows))
	if offset >= len(rows) {
		return []*T{}, total
	}
	end := offset + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end], total
}

// containsFold búsqueda de subcadena sin distinguir mayúsculas (case folding Unicode).
func containsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	folder := cases.Fold()
	return strings.Contains(folder.String(haystack), folder.String(needle))
}

func anyContainsFold(needle string, fields ...string) bool {
	if needle == "" {
		return true
	}
	for _, f := range fields {
		if containsFold(f, needle) {
			return true
		}
	}
	return false
}

func eqOrEmpty(want, got string) bool {
	return want == "" || want == got
}

func inRange(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && t.After(*to) {
		return false
	}
	return true
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
