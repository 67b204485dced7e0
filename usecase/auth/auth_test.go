package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/myplanner/backend/domain"
)

// stubUserRepo keys by lowercased username, matching the repository contract:
// uniqueness and lookups are case-insensitive.
type stubUserRepo struct {
	users map[string]*domain.User
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	key := strings.ToLower(user.Username)
	if _, ok := r.users[key]; ok {
		return domain.ErrUsernameTaken
	}
	r.users[key] = user
	return nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	if user, ok := r.users[strings.ToLower(username)]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Update(_ context.Context, _ *domain.User) error { return nil }

type stubSessionRepo struct {
	sessions map[string]*domain.Session
}

func (r *stubSessionRepo) Get(_ context.Context, id string) (*domain.Session, error) {
	if session, ok := r.sessions[id]; ok {
		return session, nil
	}
	return nil, domain.ErrSessionNotFound
}

func (r *stubSessionRepo) Save(_ context.Context, session *domain.Session) error {
	r.sessions[session.ID] = session
	return nil
}

func (r *stubSessionRepo) Delete(_ context.Context, id string) error {
	delete(r.sessions, id)
	return nil
}

func (r *stubSessionRepo) Extend(_ context.Context, _ string, _ int) error { return nil }

func newTestUseCase() (*UseCase, *stubUserRepo, *stubSessionRepo) {
	users := &stubUserRepo{users: make(map[string]*domain.User)}
	sessions := &stubSessionRepo{sessions: make(map[string]*domain.Session)}
	return New(users, sessions, "test-secret", "test-issuer", nil), users, sessions
}

func TestRegister(t *testing.T) {
	uc, _, _ := newTestUseCase()

	user, err := uc.Register(context.Background(), " alice ", "alice@example.com", "supersecret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("expected trimmed username, got %q", user.Username)
	}
	if user.PasswordHash == "supersecret" || user.PasswordHash == "" {
		t.Fatal("password must be stored hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("supersecret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestRegisterShortPassword(t *testing.T) {
	uc, _, _ := newTestUseCase()

	if _, err := uc.Register(context.Background(), "alice", "", "short"); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Fatalf("expected invalid error, got %v", err)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	uc, _, _ := newTestUseCase()

	if _, err := uc.Register(context.Background(), "alice", "", "supersecret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Register(context.Background(), "alice", "", "supersecret"); !domain.IsDomainError(err, domain.ErrCodeConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestLoginIssuesSessionBoundToken(t *testing.T) {
	uc, _, sessions := newTestUseCase()

	user, err := uc.Register(context.Background(), "alice", "", "supersecret")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	session, token, err := uc.Login(context.Background(), "alice", "supersecret", time.Hour)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, ok := sessions.sessions[session.ID]; !ok {
		t.Fatal("session was not persisted")
	}

	parsed, err := jwt.Parse(token, func(_ *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["user_id"] != user.ID {
		t.Fatalf("unexpected user_id claim: %v", claims["user_id"])
	}
	if claims["sid"] != session.ID {
		t.Fatalf("unexpected sid claim: %v", claims["sid"])
	}
	if claims["iss"] != "test-issuer" {
		t.Fatalf("unexpected issuer claim: %v", claims["iss"])
	}
}

func TestLoginUsernameCaseInsensitive(t *testing.T) {
	uc, _, _ := newTestUseCase()

	if _, err := uc.Register(context.Background(), "Alice", "", "supersecret"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, _, err := uc.Login(context.Background(), "alice", "supersecret", time.Hour); err != nil {
		t.Fatalf("login with a different casing should succeed: %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	uc, _, _ := newTestUseCase()

	if _, err := uc.Register(context.Background(), "alice", "", "supersecret"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, _, err := uc.Login(context.Background(), "alice", "wrong-password", time.Hour); err != domain.ErrBadCredentials {
		t.Fatalf("expected ErrBadCredentials, got %v", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	uc, _, _ := newTestUseCase()

	if _, _, err := uc.Login(context.Background(), "ghost", "whatever", time.Hour); err != domain.ErrBadCredentials {
		t.Fatalf("unknown user must look like bad credentials, got %v", err)
	}
}

func TestRefreshExpiredSession(t *testing.T) {
	uc, _, sessions := newTestUseCase()
	sessions.sessions["s1"] = &domain.Session{
		ID:        "s1",
		UserID:    "u1",
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	if _, _, err := uc.Refresh(context.Background(), "s1", time.Hour); !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		t.Fatalf("expected not-found for expired session, got %v", err)
	}
	if _, ok := sessions.sessions["s1"]; ok {
		t.Fatal("expired session should be evicted on refresh")
	}
}

func TestLogout(t *testing.T) {
	uc, _, sessions := newTestUseCase()
	sessions.sessions["s1"] = &domain.Session{ID: "s1", UserID: "u1", ExpiresAt: time.Now().Add(time.Hour)}

	if err := uc.Logout(context.Background(), "s1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := sessions.sessions["s1"]; ok {
		t.Fatal("session should be removed on logout")
	}
}
