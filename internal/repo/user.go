package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tdhoang/marketgraph/internal/graph"
	"github.com/tdhoang/marketgraph/internal/models"
)

// ==========================
// UserRepo
// ==========================
type UserRepo struct {
	G graph.Querier
}

func NewUserRepo(g graph.Querier) *UserRepo {
	return &UserRepo{G: g}
}

// ==========================
// Create User
// ==========================
// Create stores a User node with a fresh id. Username uniqueness is
// enforced by the schema constraint, so a duplicate fails here atomically
// and maps to ErrConflict.
func (r *UserRepo) Create(ctx context.Context, username, passwordHash string) (*models.User, error) {
	query := `
		CREATE (u:User {id: $id, username: $username, password: $password})
		RETURN u.id AS id, u.username AS username
	`

	id := uuid.NewString()
	records, err := r.G.Run(ctx, query, map[string]any{
		"id":       id,
		"username": username,
		"password": passwordHash,
	})
	if err != nil {
		if graph.IsConstraintViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("create user %q: no record returned", username)
	}

	return &models.User{
		ID:           recString(records[0], "id"),
		Username:     recString(records[0], "username"),
		PasswordHash: passwordHash,
	}, nil
}

// ==========================
// Exists
// ==========================
func (r *UserRepo) Exists(ctx context.Context, username string) (bool, error) {
	query := `
		MATCH (u:User {username: $username})
		RETURN u.id AS id
		LIMIT 1
	`

	records, err := r.G.Run(ctx, query, map[string]any{"username": username})
	if err != nil {
		return false, err
	}
	return len(records) > 0, nil
}

// ==========================
// Get By Username
// ==========================
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		MATCH (u:User {username: $username})
		RETURN u.id AS id, u.username AS username, u.password AS password
	`

	records, err := r.G.Run(ctx, query, map[string]any{"username": username})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNotFound
	}

	return &models.User{
		ID:           recString(records[0], "id"),
		Username:     recString(records[0], "username"),
		PasswordHash: recString(records[0], "password"),
	}, nil
}
