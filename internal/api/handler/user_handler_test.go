package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/eminentestates/residence-api/internal/core/domain"
	"github.com/eminentestates/residence-api/internal/core/ports"
)

type stubUserService struct {
	registerFn   func(ctx context.Context, name, email string) (*ports.RegisterResult, error)
	listFn       func(ctx context.Context) ([]domain.User, error)
	roleOfFn     func(ctx context.Context, email string) (domain.Role, error)
	updateRoleFn func(ctx context.Context, id string, role domain.Role) (*ports.UpdateResult, error)
}

func (s *stubUserService) Register(ctx context.Context, name, email string) (*ports.RegisterResult, error) {
	return s.registerFn(ctx, name, email)
}

func (s *stubUserService) List(ctx context.Context) ([]domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) RoleOf(ctx context.Context, email string) (domain.Role, error) {
	return s.roleOfFn(ctx, email)
}

func (s *stubUserService) UpdateRole(ctx context.Context, id string, role domain.Role) (*ports.UpdateResult, error) {
	return s.updateRoleFn(ctx, id, role)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestUserHandler_Register_ReturnsInsertID(t *testing.T) {
	e := newTestEcho()
	id := "65a0000000000000000000aa"
	stub := &stubUserService{
		registerFn: func(ctx context.Context, name, email string) (*ports.RegisterResult, error) {
			if name != "Alice" || email != "a@x.com" {
				t.Fatalf("unexpected args: %s %s", name, email)
			}
			return &ports.RegisterResult{InsertedID: &id}, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"Alice","email":"a@x.com"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["insertedId"] != id {
		t.Fatalf("expected insertedId %q, got %v", id, resp["insertedId"])
	}
}

func TestUserHandler_Register_DuplicateSentinel(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		registerFn: func(ctx context.Context, name, email string) (*ports.RegisterResult, error) {
			return &ports.RegisterResult{Message: "user already exists", InsertedID: nil}, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"email":"a@x.com"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("sentinel is a success, expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "user already exists" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	if resp["insertedId"] != nil {
		t.Fatalf("expected null insertedId, got %v", resp["insertedId"])
	}
}

func TestUserHandler_Register_InvalidPayload(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		registerFn: func(ctx context.Context, name, email string) (*ports.RegisterResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader("not-json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Register(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUserHandler_CheckAdmin(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		roleOfFn: func(ctx context.Context, email string) (domain.Role, error) {
			if email == "admin@x.com" {
				return domain.RoleAdmin, nil
			}
			return domain.RoleNone, nil
		},
	}
	handler := NewUserHandler(stub)

	cases := []struct {
		email string
		want  bool
	}{
		{"admin@x.com", true},
		{"plain@x.com", false},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("email")
		c.SetParamValues(tc.email)

		if err := handler.CheckAdmin(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}

		var resp map[string]bool
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if resp["admin"] != tc.want {
			t.Fatalf("CheckAdmin(%s) = %v, want %v", tc.email, resp["admin"], tc.want)
		}
	}
}

func TestUserHandler_CheckMember(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		roleOfFn: func(ctx context.Context, email string) (domain.Role, error) {
			return domain.RoleMember, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("email")
	c.SetParamValues("member@x.com")

	if err := handler.CheckMember(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]bool
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp["member"] {
		t.Fatalf("expected member=true")
	}
}

func TestUserHandler_UpdateRole_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		updateRoleFn: func(ctx context.Context, id string, role domain.Role) (*ports.UpdateResult, error) {
			if id != "65a0000000000000000000aa" || role != domain.RoleMember {
				t.Fatalf("unexpected args: %s %s", id, role)
			}
			return &ports.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"role":"member"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("65a0000000000000000000aa")

	if err := handler.UpdateRole(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_UpdateRole_RejectsUnknownRole(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		updateRoleFn: func(ctx context.Context, id string, role domain.Role) (*ports.UpdateResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"role":"owner"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("65a0000000000000000000aa")

	if err := handler.UpdateRole(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
