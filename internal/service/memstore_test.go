package service

import (
	"fmt"
	"sync"

	"github.com/mviana/exercise-tracker/internal/models"
)

// memStore is an in-memory Store used by the service tests.
type memStore struct {
	mu        sync.RWMutex
	seq       int
	users     map[string]*models.User
	exercises map[string][]models.Exercise
	failAll   bool
}

func newMemStore() *memStore {
	return &memStore{
		users:     make(map[string]*models.User),
		exercises: make(map[string][]models.Exercise),
	}
}

func (s *memStore) CreateUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll {
		return fmt.Errorf("store down")
	}
	s.seq++
	user.ID = fmt.Sprintf("u%03d", s.seq)
	stored := *user
	s.users[user.ID] = &stored
	return nil
}

func (s *memStore) FindUserByID(id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.failAll {
		return nil, fmt.Errorf("store down")
	}
	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (s *memStore) ListUsers() ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.failAll {
		return nil, fmt.Errorf("store down")
	}
	users := []models.User{}
	for _, u := range s.users {
		users = append(users, *u)
	}
	return users, nil
}

func (s *memStore) CreateExercise(ex *models.Exercise) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll {
		return fmt.Errorf("store down")
	}
	s.seq++
	ex.ID = fmt.Sprintf("e%03d", s.seq)
	s.exercises[ex.UserID] = append(s.exercises[ex.UserID], *ex)
	return nil
}

func (s *memStore) FindExercisesByUser(userID string) ([]models.Exercise, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.failAll {
		return nil, fmt.Errorf("store down")
	}
	out := make([]models.Exercise, len(s.exercises[userID]))
	copy(out, s.exercises[userID])
	return out, nil
}
