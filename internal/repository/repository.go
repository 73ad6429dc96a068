package repository

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/mviana/exercise-tracker/internal/models"
)

// Repository provides database operations
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS exercises (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		description TEXT NOT NULL,
		duration BIGINT NOT NULL,
		date TEXT NOT NULL
	)`,
}

// EnsureSchema creates the record tables if they do not exist yet.
// There is no exercises.user_id foreign key: user existence is checked
// only at write time, matching the document-store model this mirrors.
func (r *Repository) EnsureSchema() error {
	for _, stmt := range schema {
		if _, err := r.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}

// CreateUser stores a new user under a fresh identifier
func (r *Repository) CreateUser(user *models.User) error {
	user.ID = uuid.NewString()
	query := `INSERT INTO users (id, username) VALUES ($1, $2)`
	if _, err := r.db.Exec(query, user.ID, user.Username); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindUserByID retrieves a user by id, returning nil when absent
func (r *Repository) FindUserByID(id string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, username FROM users WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(&user.ID, &user.Username)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// ListUsers retrieves all users, order unspecified
func (r *Repository) ListUsers() ([]models.User, error) {
	rows, err := r.db.Query(`SELECT id, username FROM users`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// CreateExercise stores a new exercise under a fresh identifier
func (r *Repository) CreateExercise(ex *models.Exercise) error {
	ex.ID = uuid.NewString()
	query := `INSERT INTO exercises (id, user_id, description, duration, date)
		VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.db.Exec(query, ex.ID, ex.UserID, ex.Description, ex.Duration, ex.Date); err != nil {
		return fmt.Errorf("failed to create exercise: %w", err)
	}
	return nil
}

// FindExercisesByUser retrieves all exercises logged against a user.
// Deliberately no ORDER BY: log order is whatever the store yields.
func (r *Repository) FindExercisesByUser(userID string) ([]models.Exercise, error) {
	query := `SELECT id, user_id, description, duration, date FROM exercises WHERE user_id = $1`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find exercises: %w", err)
	}
	defer rows.Close()

	exercises := []models.Exercise{}
	for rows.Next() {
		var ex models.Exercise
		if err := rows.Scan(&ex.ID, &ex.UserID, &ex.Description, &ex.Duration, &ex.Date); err != nil {
			return nil, fmt.Errorf("failed to scan exercise: %w", err)
		}
		exercises = append(exercises, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to find exercises: %w", err)
	}
	return exercises, nil
}

// CountUsers returns the total number of registered users
func (r *Repository) CountUsers() (int64, error) {
	var n int64
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}

// CountExercises returns the total number of logged exercises
func (r *Repository) CountExercises() (int64, error) {
	var n int64
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM exercises`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count exercises: %w", err)
	}
	return n, nil
}
