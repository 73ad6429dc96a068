package jobs

import (
	"github.com/sirupsen/logrus"
)

// Counter is the store surface the summary job reads.
type Counter interface {
	CountUsers() (int64, error)
	CountExercises() (int64, error)
}

// Summary periodically logs store-wide activity counts.
type Summary struct {
	store Counter
	log   *logrus.Logger
}

// NewSummary initializes a new summary job
func NewSummary(store Counter, log *logrus.Logger) *Summary {
	return &Summary{store: store, log: log}
}

// Run is invoked by the cron scheduler
func (s *Summary) Run() {
	users, err := s.store.CountUsers()
	if err != nil {
		s.log.Errorf("Summary: failed to count users: %v", err)
		return
	}
	exercises, err := s.store.CountExercises()
	if err != nil {
		s.log.Errorf("Summary: failed to count exercises: %v", err)
		return
	}
	s.log.WithFields(logrus.Fields{
		"users":     users,
		"exercises": exercises,
	}).Info("Activity summary")
}
