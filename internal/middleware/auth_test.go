package middleware

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/valyala/fasthttp"
)

const testSecret = "middleware-test-secret"

func signedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func runMiddleware(token string) (*fasthttp.RequestCtx, bool) {
	var called bool
	handler := JWTAuth(testSecret, nil)(func(ctx *fasthttp.RequestCtx) {
		called = true
	})

	var ctx fasthttp.RequestCtx
	var req fasthttp.Request
	req.SetRequestURI("/api/v1/tasks")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	ctx.Init(&req, nil, nil)

	handler(&ctx)
	return &ctx, called
}

func TestJWTAuthInjectsIdentity(t *testing.T) {
	token := signedToken(t, testSecret, jwt.MapClaims{
		"user_id": "u1",
		"sid":     "s1",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	ctx, called := runMiddleware(token)
	if !called {
		t.Fatal("expected next handler to run")
	}
	if got := string(ctx.Request.Header.Peek("X-User-ID")); got != "u1" {
		t.Fatalf("expected user header, got %q", got)
	}
	if got := string(ctx.Request.Header.Peek("X-Session-ID")); got != "s1" {
		t.Fatalf("expected session header, got %q", got)
	}
}

func TestJWTAuthMissingToken(t *testing.T) {
	ctx, called := runMiddleware("")
	if called {
		t.Fatal("handler must not run without a token")
	}
	if ctx.Response.StatusCode() != fasthttp.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", ctx.Response.StatusCode())
	}
}

func TestJWTAuthWrongSecret(t *testing.T) {
	token := signedToken(t, "another-secret", jwt.MapClaims{
		"user_id": "u1",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	ctx, called := runMiddleware(token)
	if called {
		t.Fatal("handler must not run with a forged token")
	}
	if ctx.Response.StatusCode() != fasthttp.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", ctx.Response.StatusCode())
	}
}

func TestJWTAuthExpiredToken(t *testing.T) {
	token := signedToken(t, testSecret, jwt.MapClaims{
		"user_id": "u1",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})

	_, called := runMiddleware(token)
	if called {
		t.Fatal("handler must not run with an expired token")
	}
}
