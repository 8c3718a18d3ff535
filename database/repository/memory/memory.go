// Package memoryRepo holds in-memory implementations of the repository interfaces.
// They follow the Mongo implementations' error contract and back the service and route tests.
package memoryRepo

import (
	"fmt"
	"strings"
	"sync"

	"libraryhub/database/repository"
	"libraryhub/models"
	"libraryhub/utils"
)

func notFound(what, id string) error {
	return fmt.Errorf("%s %s: %w", what, id, utils.ErrNotFound)
}

func page[T any](items []T, limit, offset int64) []T {
	if limit <= 0 {
		limit = repository.DefaultPageSize
	}
	if limit > repository.MaxPageSize {
		limit = repository.MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= int64(len(items)) {
		return []T{}
	}
	end := offset + limit
	if end > int64(len(items)) {
		end = int64(len(items))
	}
	return items[offset:end]
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func visibleIn(v models.Visibility, allowed []models.Visibility) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if a == v {
			return true
		}
	}
	return false
}

// store is an ordered map guarded by a mutex. Insertion order is kept so
// newest-first listings are stable even when timestamps collide.
type store[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
	order []string
}

func newStore[T any]() store[T] {
	return store[T]{items: make(map[string]*T)}
}

func (s *store[T]) put(id string, v T) {
	if _, ok := s.items[id]; !ok {
		s.order = append(s.order, id)
	}
	s.items[id] = &v
}

func (s *store[T]) remove(id string) bool {
	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	for i, key := range s.order {
		if key == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// newestFirst returns copies of the values matching keep, most recently inserted first.
func (s *store[T]) newestFirst(keep func(*T) bool) []T {
	out := make([]T, 0)
	for i := len(s.order) - 1; i >= 0; i-- {
		v := s.items[s.order[i]]
		if keep == nil || keep(v) {
			out = append(out, *v)
		}
	}
	return out
}

func reverse[T any](items []T) []T {
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	return items
}
