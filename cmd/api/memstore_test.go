package main

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/tdhoang/marketgraph/internal/models"
	"github.com/tdhoang/marketgraph/internal/repo"
)

// memDB is an in-memory stand-in for the graph: users and products are the
// nodes, carts[userID] is the set of ADDED_TO_CART edges. The three mem*
// types expose it through the handler store interfaces so the full router
// can run in tests without Neo4j.
type memDB struct {
	mu       sync.Mutex
	users    map[string]*models.User // by username
	products map[string]models.Product
	carts    map[string]map[string]bool // userID -> productID set
}

func newMemDB() *memDB {
	return &memDB{
		users:    make(map[string]*models.User),
		products: make(map[string]models.Product),
		carts:    make(map[string]map[string]bool),
	}
}

func (db *memDB) Ping(context.Context) error { return nil }

func (db *memDB) userExists(id string) bool {
	for _, u := range db.users {
		if u.ID == id {
			return true
		}
	}
	return false
}

type memUsers struct{ db *memDB }

func (s *memUsers) Create(_ context.Context, username, passwordHash string) (*models.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.users[username]; ok {
		return nil, repo.ErrConflict
	}
	u := &models.User{ID: uuid.NewString(), Username: username, PasswordHash: passwordHash}
	s.db.users[username] = u
	return u, nil
}

func (s *memUsers) GetByUsername(_ context.Context, username string) (*models.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	u, ok := s.db.users[username]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return u, nil
}

type memProducts struct{ db *memDB }

func (s *memProducts) Create(_ context.Context, userID, name, description string, price float64, location string) (*models.Product, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if !s.db.userExists(userID) {
		return nil, repo.ErrNotFound
	}
	p := models.Product{ID: uuid.NewString(), Name: name, Description: description, Price: price, Location: location}
	s.db.products[p.ID] = p
	return &p, nil
}

func (s *memProducts) Search(_ context.Context, q, location string) ([]models.Product, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	out := []models.Product{}
	for _, p := range s.db.products {
		if !strings.Contains(p.Name, q) {
			continue
		}
		if location != "" && p.Location != location {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

type memCart struct{ db *memDB }

func (s *memCart) Add(_ context.Context, userID, productID string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if !s.db.userExists(userID) {
		return repo.ErrNotFound
	}
	if _, ok := s.db.products[productID]; !ok {
		return repo.ErrNotFound
	}
	if s.db.carts[userID] == nil {
		s.db.carts[userID] = make(map[string]bool)
	}
	s.db.carts[userID][productID] = true
	return nil
}

func (s *memCart) List(_ context.Context, userID string) ([]models.Product, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	out := []models.Product{}
	for pid := range s.db.carts[userID] {
		out = append(out, s.db.products[pid])
	}
	return out, nil
}

func (s *memCart) Clear(_ context.Context, userID string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	delete(s.db.carts, userID)
	return nil
}
