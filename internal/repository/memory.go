package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/GulizarHanum/Birthday/internal/model"
)

// MemoryStore keeps birthdays in a map. It is meant for tests and for running the service
// without a database; all data is lost when the process ends.
type MemoryStore struct {
	mu        sync.Mutex
	lastId    int64
	birthdays map[int64]model.Birthday
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{birthdays: make(map[int64]model.Birthday)}
}

// FindByID implements Store.
func (s *MemoryStore) FindByID(_ context.Context, id int64) (model.Birthday, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.birthdays[id]
	if !ok {
		return model.Birthday{}, ErrNotFound
	}
	return clone(b), nil
}

// FindAll implements Store.
func (s *MemoryStore) FindAll(_ context.Context) ([]model.Birthday, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	birthdays := make([]model.Birthday, 0, len(s.birthdays))
	for _, b := range s.birthdays {
		birthdays = append(birthdays, clone(b))
	}
	sort.Slice(birthdays, func(i, j int) bool { return birthdays[i].Id < birthdays[j].Id })
	return birthdays, nil
}

// Save implements Store. Ids are handed out in increasing order and never reused, even after
// the record holding the highest id has been deleted.
func (s *MemoryStore) Save(_ context.Context, birthday *model.Birthday) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if birthday.Id == 0 {
		s.lastId++
		birthday.Id = s.lastId
	} else if birthday.Id > s.lastId {
		s.lastId = birthday.Id
	}
	s.birthdays[birthday.Id] = clone(*birthday)
	return nil
}

// DeleteByID implements Store.
func (s *MemoryStore) DeleteByID(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.birthdays[id]; !ok {
		return ErrNotFound
	}
	delete(s.birthdays, id)
	return nil
}

// clone copies the photo so that callers cannot modify stored data.
func clone(b model.Birthday) model.Birthday {
	if b.Photo != nil {
		b.Photo = append([]byte{}, b.Photo...)
	}
	return b
}
