package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "baletrack/internal/errors"
	"baletrack/internal/middleware"
	"baletrack/internal/models"
	"baletrack/internal/services"
	"baletrack/internal/validator"
)

// --- mock services ---

type mockUserService struct {
	registerFn     func(name, email, password string) (*models.User, error)
	authenticateFn func(email, password string) (*models.User, error)
	getUserByIDFn  func(id string) (*models.User, error)
}

func (m *mockUserService) Register(_ context.Context, name, email, password string) (*models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(name, email, password)
	}
	return &models.User{}, nil
}

func (m *mockUserService) Authenticate(_ context.Context, email, password string) (*models.User, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(email, password)
	}
	return &models.User{}, nil
}

func (m *mockUserService) GetUserByID(_ context.Context, id string) (*models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(id)
	}
	return &models.User{}, nil
}

var _ services.UserServicer = (*mockUserService)(nil)

type auditEntry struct {
	userID, action, resourceType, resourceID string
	changes                                  map[string]any
}

type mockAuditService struct {
	mu      sync.Mutex
	entries []auditEntry
}

func (m *mockAuditService) Log(userID, action, resourceType, resourceID, _ string, changes map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, auditEntry{userID, action, resourceType, resourceID, changes})
}

var _ services.AuditServicer = (*mockAuditService)(nil)

type mockTokens struct {
	err error
}

func (m *mockTokens) Generate(user *models.User) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return "token-for-" + user.ID, nil
}

// --- test helpers ---

const testUserID = "0190f0e4-7c1a-7b3e-9d2a-3f4e5a6b7c8d"

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func setupAuthRouter(handler *AuthHandler) *gin.Engine {
	r := gin.New()
	r.POST("/user/signup", handler.Signup)
	r.POST("/user/login", handler.Login)
	r.GET("/user/profile", injectUserID(testUserID), handler.Profile)
	r.GET("/anonymous/profile", handler.Profile)
	return r
}

func injectUserID(uid string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, uid)
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func parseData(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	result := parseJSON(t, rec)
	if result["success"] != true {
		t.Fatalf("expected success envelope, got: %v", result)
	}
	data, ok := result["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected data object, got: %v", result["data"])
	}
	return data
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	if result["success"] != false {
		t.Errorf("expected success=false, got %v", result["success"])
	}
	if result["error"] != code {
		t.Errorf("expected error code %q, got %v", code, result["error"])
	}
	if msg, _ := result["message"].(string); msg == "" {
		t.Error("expected a message in the failure envelope")
	}
}

// --- tests ---

func TestAuthHandler_Signup(t *testing.T) {
	t.Run("returns 201 with token and user", func(t *testing.T) {
		userSvc := &mockUserService{
			registerFn: func(name, email, _ string) (*models.User, error) {
				return &models.User{Base: models.Base{ID: testUserID}, Name: name, Email: email}, nil
			},
		}
		r := setupAuthRouter(NewAuthHandler(userSvc, &mockTokens{}))

		rec := doRequest(r, "POST", "/user/signup",
			`{"name":"Asha","email":"asha@example.com","password":"pw"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		data := parseData(t, rec)
		if data["token"] != "token-for-"+testUserID {
			t.Errorf("unexpected token %v", data["token"])
		}
		user := data["user"].(map[string]interface{})
		if user["email"] != "asha@example.com" || user["name"] != "Asha" || user["id"] != testUserID {
			t.Errorf("unexpected user %v", user)
		}
		if _, leaked := user["password"]; leaked {
			t.Error("password must not be serialised")
		}
	})

	t.Run("returns 400 on missing fields", func(t *testing.T) {
		r := setupAuthRouter(NewAuthHandler(&mockUserService{}, &mockTokens{}))

		for _, body := range []string{
			`{"email":"a@example.com","password":"pw"}`,
			`{"name":"A","password":"pw"}`,
			`{"name":"A","email":"a@example.com"}`,
			`{"name":"A","email":"not-an-email","password":"pw"}`,
		} {
			rec := doRequest(r, "POST", "/user/signup", body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 for %s, got %d", body, rec.Code)
			}
			assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
		}
	})

	t.Run("returns 409 on duplicate email", func(t *testing.T) {
		userSvc := &mockUserService{
			registerFn: func(_, _, _ string) (*models.User, error) {
				return nil, apperrors.ErrDuplicateEmail
			},
		}
		r := setupAuthRouter(NewAuthHandler(userSvc, &mockTokens{}))

		rec := doRequest(r, "POST", "/user/signup", `{"name":"A","email":"dup@example.com","password":"pw"}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "DUPLICATE_EMAIL")
	})

	t.Run("returns 500 when signing fails", func(t *testing.T) {
		r := setupAuthRouter(NewAuthHandler(&mockUserService{}, &mockTokens{err: errors.New("no key")}))

		rec := doRequest(r, "POST", "/user/signup", `{"name":"A","email":"a@example.com","password":"pw"}`)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INTERNAL_ERROR")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("returns 200 with token", func(t *testing.T) {
		userSvc := &mockUserService{
			authenticateFn: func(email, _ string) (*models.User, error) {
				return &models.User{Base: models.Base{ID: testUserID}, Email: email}, nil
			},
		}
		r := setupAuthRouter(NewAuthHandler(userSvc, &mockTokens{}))

		rec := doRequest(r, "POST", "/user/login", `{"email":"a@example.com","password":"pw"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if parseData(t, rec)["token"] == "" {
			t.Error("expected token")
		}
	})

	t.Run("returns 401 on bad credentials", func(t *testing.T) {
		userSvc := &mockUserService{
			authenticateFn: func(_, _ string) (*models.User, error) {
				return nil, apperrors.ErrInvalidCredentials
			},
		}
		r := setupAuthRouter(NewAuthHandler(userSvc, &mockTokens{}))

		rec := doRequest(r, "POST", "/user/login", `{"email":"a@example.com","password":"wrong"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_CREDENTIALS")
	})

	t.Run("returns 400 on missing password", func(t *testing.T) {
		r := setupAuthRouter(NewAuthHandler(&mockUserService{}, &mockTokens{}))

		rec := doRequest(r, "POST", "/user/login", `{"email":"a@example.com"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestAuthHandler_Profile(t *testing.T) {
	t.Run("returns current user", func(t *testing.T) {
		var gotID string
		userSvc := &mockUserService{
			getUserByIDFn: func(id string) (*models.User, error) {
				gotID = id
				return &models.User{Base: models.Base{ID: id}, Name: "Asha", Email: "asha@example.com"}, nil
			},
		}
		r := setupAuthRouter(NewAuthHandler(userSvc, &mockTokens{}))

		rec := doRequest(r, "GET", "/user/profile", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotID != testUserID {
			t.Errorf("expected lookup of %s, got %s", testUserID, gotID)
		}
		if parseData(t, rec)["name"] != "Asha" {
			t.Error("expected profile name")
		}
	})

	t.Run("returns 401 without user in context", func(t *testing.T) {
		r := setupAuthRouter(NewAuthHandler(&mockUserService{}, &mockTokens{}))

		rec := doRequest(r, "GET", "/anonymous/profile", "")

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "UNAUTHORIZED")
	})
}
