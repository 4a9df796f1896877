package api

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cmaina/shoplist-api/internal/domain"
	"github.com/cmaina/shoplist-api/internal/store"
)

// The fakes below implement the store interfaces over in-memory maps
// so handler tests can run without a database. They mirror the
// uniqueness and ownership rules the real stores enforce through the
// schema.

type fakeUserStore struct {
	mu     sync.Mutex
	users  map[int64]domain.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]domain.User), nextID: 1}
}

func (s *fakeUserStore) Create(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return store.ErrEmailExists
		}
	}
	user.ID = s.nextID
	s.nextID++
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	s.users[user.ID] = *user
	return nil
}

func (s *fakeUserStore) GetByID(_ context.Context, id int64) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &u, nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (s *fakeUserStore) Update(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.ID]; !ok {
		return store.ErrUserNotFound
	}
	for id, u := range s.users {
		if id != user.ID && u.Email == user.Email {
			return store.ErrEmailExists
		}
	}
	user.UpdatedAt = time.Now().UTC()
	s.users[user.ID] = *user
	return nil
}

func (s *fakeUserStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return store.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

func (s *fakeUserStore) WithTx(*sql.Tx) store.UserStore { return s }

type fakeListStore struct {
	mu     sync.Mutex
	lists  map[int64]domain.ShoppingList
	items  *fakeItemStore
	nextID int64
}

func newFakeListStore(items *fakeItemStore) *fakeListStore {
	return &fakeListStore{lists: make(map[int64]domain.ShoppingList), items: items, nextID: 1}
}

func (s *fakeListStore) Create(_ context.Context, list *domain.ShoppingList) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.lists {
		if l.OwnerID == list.OwnerID && l.Name == list.Name {
			return store.ErrListNameExists
		}
	}
	list.ID = s.nextID
	s.nextID++
	now := time.Now().UTC()
	list.CreatedAt = now
	list.UpdatedAt = now
	s.lists[list.ID] = *list
	return nil
}

func (s *fakeListStore) GetByID(_ context.Context, ownerID, id int64) (*domain.ShoppingList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.lists[id]
	if !ok || l.OwnerID != ownerID {
		return nil, store.ErrListNotFound
	}
	return &l, nil
}

func (s *fakeListStore) List(_ context.Context, ownerID int64, limit, offset int) ([]domain.ShoppingList, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var owned []domain.ShoppingList
	for _, l := range s.lists {
		if l.OwnerID == ownerID {
			owned = append(owned, l)
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].ID < owned[j].ID })
	total := len(owned)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return owned[offset:end], total, nil
}

func (s *fakeListStore) Search(_ context.Context, ownerID int64, term string) ([]domain.ShoppingList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []domain.ShoppingList
	for _, l := range s.lists {
		if l.OwnerID == ownerID && strings.Contains(strings.ToLower(l.Name), strings.ToLower(term)) {
			matched = append(matched, l)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched, nil
}

func (s *fakeListStore) Update(_ context.Context, list *domain.ShoppingList) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.lists[list.ID]
	if !ok || existing.OwnerID != list.OwnerID {
		return store.ErrListNotFound
	}
	for id, l := range s.lists {
		if id != list.ID && l.OwnerID == list.OwnerID && l.Name == list.Name {
			return store.ErrListNameExists
		}
	}
	list.UpdatedAt = time.Now().UTC()
	s.lists[list.ID] = *list
	return nil
}

func (s *fakeListStore) Delete(_ context.Context, ownerID, id int64) error {
	s.mu.Lock()
	l, ok := s.lists[id]
	if !ok || l.OwnerID != ownerID {
		s.mu.Unlock()
		return store.ErrListNotFound
	}
	delete(s.lists, id)
	s.mu.Unlock()

	// Mirror the schema's cascade from lists to items.
	if s.items != nil {
		s.items.deleteByList(id)
	}
	return nil
}

func (s *fakeListStore) WithTx(*sql.Tx) store.ListStore { return s }

type fakeItemStore struct {
	mu     sync.Mutex
	items  map[int64]domain.ShoppingItem
	nextID int64
}

func newFakeItemStore() *fakeItemStore {
	return &fakeItemStore{items: make(map[int64]domain.ShoppingItem), nextID: 1}
}

func (s *fakeItemStore) Create(_ context.Context, item *domain.ShoppingItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.ListID == item.ListID && it.Name == item.Name {
			return store.ErrItemNameExists
		}
	}
	item.ID = s.nextID
	s.nextID++
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	s.items[item.ID] = *item
	return nil
}

func (s *fakeItemStore) GetByID(_ context.Context, ownerID, listID, id int64) (*domain.ShoppingItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	if !ok || it.OwnerID != ownerID || it.ListID != listID {
		return nil, store.ErrItemNotFound
	}
	return &it, nil
}

func (s *fakeItemStore) List(_ context.Context, ownerID, listID int64, limit, offset int) ([]domain.ShoppingItem, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var owned []domain.ShoppingItem
	for _, it := range s.items {
		if it.OwnerID == ownerID && it.ListID == listID {
			owned = append(owned, it)
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].ID < owned[j].ID })
	total := len(owned)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return owned[offset:end], total, nil
}

func (s *fakeItemStore) Search(_ context.Context, ownerID, listID int64, term string) ([]domain.ShoppingItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []domain.ShoppingItem
	for _, it := range s.items {
		if it.OwnerID == ownerID && it.ListID == listID &&
			strings.Contains(strings.ToLower(it.Name), strings.ToLower(term)) {
			matched = append(matched, it)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched, nil
}

func (s *fakeItemStore) Update(_ context.Context, item *domain.ShoppingItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.items[item.ID]
	if !ok || existing.OwnerID != item.OwnerID || existing.ListID != item.ListID {
		return store.ErrItemNotFound
	}
	for id, it := range s.items {
		if id != item.ID && it.ListID == item.ListID && it.Name == item.Name {
			return store.ErrItemNameExists
		}
	}
	item.UpdatedAt = time.Now().UTC()
	s.items[item.ID] = *item
	return nil
}

func (s *fakeItemStore) Delete(_ context.Context, ownerID, listID, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	if !ok || it.OwnerID != ownerID || it.ListID != listID {
		return store.ErrItemNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *fakeItemStore) deleteByList(listID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, it := range s.items {
		if it.ListID == listID {
			delete(s.items, id)
		}
	}
}

func (s *fakeItemStore) WithTx(*sql.Tx) store.ItemStore { return s }
