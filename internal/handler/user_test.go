package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/spacerhq/spacer-backend/internal/repository"
	"github.com/spacerhq/spacer-backend/internal/utils"
)

func TestAddUser_HashesPassword(t *testing.T) {
	var stored *repository.User
	users := &mockUserStore{
		createFn: func(ctx context.Context, u *repository.User) error {
			u.ID = 1
			stored = u
			return nil
		},
	}

	h := NewUserHandler(testConfig(t), users)
	e := echo.New()
	c, rec := newJSONContext(e, http.MethodPost, "/addusers", `{"username":"al","email":"al@x.com","password":"p1"}`)

	assert.NoError(t, h.AddUser(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "User added successfully", decodeBody(rec)["message"])

	assert.NotNil(t, stored)
	assert.Equal(t, "al", stored.Username)
	assert.Equal(t, "al@x.com", stored.Email)
	assert.Equal(t, "user", stored.Role)
	// plaintext never persisted, hash verifies
	assert.NotEqual(t, "p1", stored.PasswordHash)
	assert.True(t, utils.VerifyPassword(stored.PasswordHash, "p1"))
}

func TestAddUser_MissingFields(t *testing.T) {
	users := &mockUserStore{
		createFn: func(ctx context.Context, u *repository.User) error {
			t.Fatal("store must not be called on invalid input")
			return nil
		},
	}
	h := NewUserHandler(testConfig(t), users)
	e := echo.New()

	cases := []string{
		`{"email":"al@x.com","password":"p1"}`,
		`{"username":"al","password":"p1"}`,
		`{"username":"al","email":"al@x.com"}`,
		`{}`,
	}
	for _, body := range cases {
		c, rec := newJSONContext(e, http.MethodPost, "/addusers", body)
		assert.NoError(t, h.AddUser(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)
		assert.Equal(t, "Missing required fields", decodeBody(rec)["message"])
	}
}

func TestAddUser_DuplicateEmail(t *testing.T) {
	users := &mockUserStore{
		createFn: func(ctx context.Context, u *repository.User) error {
			return repository.ErrEmailExists
		},
	}
	h := NewUserHandler(testConfig(t), users)
	e := echo.New()
	c, rec := newJSONContext(e, http.MethodPost, "/addusers", `{"username":"al","email":"al@x.com","password":"p1"}`)

	assert.NoError(t, h.AddUser(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetUsers_ExcludesPasswordHash(t *testing.T) {
	users := &mockUserStore{
		listFn: func(ctx context.Context) ([]*repository.User, error) {
			return []*repository.User{
				{ID: 1, Username: "al", Email: "al@x.com", PasswordHash: "$2a$10$secret", Role: "user"},
				{ID: 2, Username: "bo", Email: "bo@x.com", PasswordHash: "$2a$10$secret2", Role: "admin"},
			}, nil
		},
	}
	h := NewUserHandler(testConfig(t), users)
	e := echo.New()
	c, rec := newJSONContext(e, http.MethodGet, "/getusers", "")

	assert.NoError(t, h.GetUsers(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret")

	body := decodeBody(rec)
	list := body["users"].([]any)
	assert.Len(t, list, 2)
	first := list[0].(map[string]any)
	assert.Equal(t, "al", first["username"])
	assert.Equal(t, "al@x.com", first["email"])
	assert.Equal(t, "user", first["role"])

	// listing twice with no writes yields identical output
	c2, rec2 := newJSONContext(e, http.MethodGet, "/getusers", "")
	assert.NoError(t, h.GetUsers(c2))
	assert.Equal(t, rec.Body.String(), rec2.Body.String())
}

func TestDeleteUser(t *testing.T) {
	var deleted string
	users := &mockUserStore{
		deleteFn: func(ctx context.Context, email string) error {
			deleted = email
			return nil
		},
	}
	h := NewUserHandler(testConfig(t), users)
	e := echo.New()

	c, rec := newJSONContext(e, http.MethodDelete, "/deleteuser", "")
	c.Set("identity", "al@x.com")
	c.Set("role", "user")

	assert.NoError(t, h.DeleteUser(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "al@x.com", deleted)

	// unknown subject
	users.deleteFn = func(ctx context.Context, email string) error { return repository.ErrUserNotFound }
	c2, rec2 := newJSONContext(e, http.MethodDelete, "/deleteuser", "")
	c2.Set("identity", "gone@x.com")
	assert.NoError(t, h.DeleteUser(c2))
	assert.Equal(t, http.StatusNotFound, rec2.Code)

	// no identity in context
	c3, rec3 := newJSONContext(e, http.MethodDelete, "/deleteuser", "")
	assert.NoError(t, h.DeleteUser(c3))
	assert.Equal(t, http.StatusUnauthorized, rec3.Code)
}
