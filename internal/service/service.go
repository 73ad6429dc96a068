package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/mviana/exercise-tracker/internal/models"
	"github.com/sirupsen/logrus"
)

// ErrUserNotFound is returned when a referenced user id does not exist.
var ErrUserNotFound = errors.New("user not found")

// Store is the persistence surface the service depends on. FindUserByID
// returns nil, nil when the user is absent.
type Store interface {
	CreateUser(user *models.User) error
	FindUserByID(id string) (*models.User, error)
	ListUsers() ([]models.User, error)
	CreateExercise(ex *models.Exercise) error
	FindExercisesByUser(userID string) ([]models.Exercise, error)
}

// Service handles business logic
type Service struct {
	store Store
	log   *logrus.Logger
	now   func() time.Time
}

// NewService initializes a new service
func NewService(store Store, log *logrus.Logger) *Service {
	return &Service{store: store, log: log, now: time.Now}
}

// CreateUser registers a new user under a fresh identifier
func (s *Service) CreateUser(username string) (*models.User, error) {
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}

	user := &models.User{Username: username}
	if err := s.store.CreateUser(user); err != nil {
		return nil, err
	}

	s.log.Infof("User created: %s (%s)", user.Username, user.ID)
	return user, nil
}

// ListUsers returns all registered users, order unspecified
func (s *Service) ListUsers() ([]models.User, error) {
	return s.store.ListUsers()
}

// AddExercise logs an exercise against an existing user. The date is
// canonicalized (defaulting to today) and the duration coerced, never
// rejected; the returned _id is the user's id.
func (s *Service) AddExercise(userID, description, duration, date string) (*models.ExerciseResult, error) {
	user, err := s.store.FindUserByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if description == "" {
		return nil, fmt.Errorf("description is required")
	}

	ex := &models.Exercise{
		UserID:      user.ID,
		Description: description,
		Duration:    coerceInt(duration),
		Date:        canonicalDate(date, s.now()),
	}
	if err := s.store.CreateExercise(ex); err != nil {
		return nil, err
	}

	s.log.Infof("Exercise logged for user %s: %s (%d min, %s)", user.ID, ex.Description, ex.Duration, ex.Date)
	return &models.ExerciseResult{
		Username:    user.Username,
		Description: ex.Description,
		Duration:    ex.Duration,
		Date:        ex.Date,
		ID:          user.ID,
	}, nil
}

// GetLog returns a user's exercises, filtered by the inclusive from/to
// bounds and truncated to a prefix of at most limit entries. The prefix is
// taken in store order, not chronological order.
func (s *Service) GetLog(userID, from, to, limit string) (*models.LogResult, error) {
	user, err := s.store.FindUserByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	exercises, err := s.store.FindExercisesByUser(user.ID)
	if err != nil {
		return nil, err
	}

	if from != "" {
		exercises = filterByDate(exercises, from, func(entry, bound time.Time) bool {
			return !entry.Before(bound)
		})
	}
	if to != "" {
		exercises = filterByDate(exercises, to, func(entry, bound time.Time) bool {
			return !entry.After(bound)
		})
	}
	if limit != "" {
		n := coerceInt(limit)
		if n == NotANumber || n < 0 {
			n = 0
		}
		if n < len(exercises) {
			exercises = exercises[:n]
		}
	}

	log := make([]models.LogEntry, 0, len(exercises))
	for _, ex := range exercises {
		log = append(log, models.LogEntry{
			Description: ex.Description,
			Duration:    ex.Duration,
			Date:        ex.Date,
		})
	}

	return &models.LogResult{
		Username: user.Username,
		Count:    len(log),
		ID:       user.ID,
		Log:      log,
	}, nil
}

// filterByDate keeps entries whose parsed date satisfies keep against the
// parsed bound. A side that fails to parse makes the comparison false, so a
// malformed bound excludes everything and "Invalid Date" entries are
// excluded by any bound.
func filterByDate(exercises []models.Exercise, bound string, keep func(entry, bound time.Time) bool) []models.Exercise {
	boundDate, boundOK := parseDate(bound)
	out := make([]models.Exercise, 0, len(exercises))
	for _, ex := range exercises {
		entryDate, entryOK := parseDate(ex.Date)
		if boundOK && entryOK && keep(entryDate, boundDate) {
			out = append(out, ex)
		}
	}
	return out
}
