package repo

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/tdhoang/marketgraph/internal/graph"
	"github.com/tdhoang/marketgraph/internal/graph/graphtest"
)

func TestUserRepo_Create(t *testing.T) {
	fake := &graphtest.Fake{}
	fake.Expect([]graph.Record{{"id": "u-1", "username": "alice"}}, nil)

	r := NewUserRepo(fake)
	user, err := r.Create(context.Background(), "alice", "hashed-pw")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if user.ID != "u-1" || user.Username != "alice" || user.PasswordHash != "hashed-pw" {
		t.Errorf("unexpected user: %+v", user)
	}

	call := fake.LastCall()
	if !strings.Contains(call.Cypher, "CREATE (u:User") {
		t.Errorf("unexpected cypher: %s", call.Cypher)
	}
	if call.Params["username"] != "alice" || call.Params["password"] != "hashed-pw" {
		t.Errorf("unexpected params: %+v", call.Params)
	}
	if id, _ := call.Params["id"].(string); id == "" {
		t.Error("expected a generated id param")
	}
}

func TestUserRepo_Create_Conflict(t *testing.T) {
	fake := &graphtest.Fake{}
	fake.Expect(nil, &neo4j.Neo4jError{Code: "Neo.ClientError.Schema.ConstraintValidationFailed"})

	r := NewUserRepo(fake)
	_, err := r.Create(context.Background(), "alice", "hashed-pw")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got: %v", err)
	}
}

func TestUserRepo_Exists(t *testing.T) {
	fake := &graphtest.Fake{}
	fake.Expect([]graph.Record{{"id": "u-1"}}, nil)

	r := NewUserRepo(fake)
	ok, err := r.Exists(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if !ok {
		t.Error("expected true for existing user")
	}

	// No records back means no such user.
	ok, err = r.Exists(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if ok {
		t.Error("expected false for missing user")
	}
}

func TestUserRepo_GetByUsername(t *testing.T) {
	fake := &graphtest.Fake{}
	fake.Expect([]graph.Record{{"id": "u-2", "username": "bob", "password": "hash"}}, nil)

	r := NewUserRepo(fake)
	user, err := r.GetByUsername(context.Background(), "bob")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if user.ID != "u-2" || user.Username != "bob" || user.PasswordHash != "hash" {
		t.Errorf("unexpected user: %+v", user)
	}
}

func TestUserRepo_GetByUsername_NotFound(t *testing.T) {
	fake := &graphtest.Fake{}

	r := NewUserRepo(fake)
	_, err := r.GetByUsername(context.Background(), "nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}
