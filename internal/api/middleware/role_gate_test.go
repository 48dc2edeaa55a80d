package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/eminentestates/residence-api/internal/core/domain"
	"github.com/eminentestates/residence-api/internal/core/ports"
)

// stubUserRepo serves role checks from a fixed email → role map.
type stubUserRepo struct {
	roles map[string]domain.Role
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	role, ok := r.roles[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &domain.User{Email: email, Role: role}, nil
}

func (r *stubUserRepo) Insert(context.Context, *domain.User) (string, error) {
	return "", nil
}

func (r *stubUserRepo) List(context.Context) ([]domain.User, error) {
	return nil, nil
}

func (r *stubUserRepo) UpdateRole(context.Context, string, domain.Role) (*ports.UpdateResult, error) {
	return nil, nil
}

func gateContext(e *echo.Echo, email string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if email != "" {
		c.Set(CtxEmail, email)
	}
	return c, rec
}

func TestRequireRole_Allows(t *testing.T) {
	e := echo.New()
	repo := &stubUserRepo{roles: map[string]domain.Role{"admin@example.com": domain.RoleAdmin}}
	c, rec := gateContext(e, "admin@example.com")

	called := false
	mw := RequireRole(repo, domain.RoleAdmin)
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRole_ForbidsWrongRole(t *testing.T) {
	e := echo.New()
	repo := &stubUserRepo{roles: map[string]domain.Role{"bob@example.com": domain.RoleMember}}
	c, _ := gateContext(e, "bob@example.com")

	mw := RequireRole(repo, domain.RoleAdmin)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRequireRole_ForbidsRoleNone(t *testing.T) {
	e := echo.New()
	repo := &stubUserRepo{roles: map[string]domain.Role{"guest@example.com": domain.RoleNone}}
	c, _ := gateContext(e, "guest@example.com")

	mw := RequireRole(repo, domain.RoleMember)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRequireRole_ForbidsUnknownUser(t *testing.T) {
	e := echo.New()
	repo := &stubUserRepo{roles: map[string]domain.Role{}}
	c, _ := gateContext(e, "ghost@example.com")

	mw := RequireRole(repo, domain.RoleAdmin)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRequireRole_MissingClaims(t *testing.T) {
	e := echo.New()
	repo := &stubUserRepo{roles: map[string]domain.Role{}}
	c, _ := gateContext(e, "")

	mw := RequireRole(repo, domain.RoleAdmin)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestRequireSelf_Match(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("email")
	c.SetParamValues("alice@example.com")
	c.Set(CtxEmail, "alice@example.com")

	called := false
	mw := RequireSelf("email")
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestRequireSelf_Mismatch(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("email")
	c.SetParamValues("victim@example.com")
	c.Set(CtxEmail, "attacker@example.com")

	mw := RequireSelf("email")
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
