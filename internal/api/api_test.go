package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	authHandler "countdown-server/internal/auth/handler"
	authProcessor "countdown-server/internal/auth/processor"
	countdownHandler "countdown-server/internal/countdown/handler"
	countdownProcessor "countdown-server/internal/countdown/processor"
	"countdown-server/internal/observability"
	receiverHandler "countdown-server/internal/receiver/handler"
	receiverProcessor "countdown-server/internal/receiver/processor"
	"countdown-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret"

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func newTestRouter(database HealthChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := observability.NewLogger()

	// The role checks reject these requests before any store is touched.
	auth := authHandler.New(authProcessor.New(nil, testJWTSecret, logger), logger)
	countdowns := countdownHandler.New(countdownProcessor.New(nil, nil, nil, nil, countdownProcessor.Config{}, logger), logger)
	receivers := receiverHandler.New(receiverProcessor.New(nil, nil, nil, nil, logger), logger)

	r := gin.New()
	a := New(r.Group("/"), auth, countdowns, receivers, nil, database)
	a.RegisterRoutes()
	return r
}

func bearer(t *testing.T, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  uuid.NewString(),
		"role": role,
		"iss":  "countdown-server",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return "Bearer " + signed
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name     string
		database HealthChecker
		want     int
	}{
		{name: "healthy", database: pinger{}, want: http.StatusOK},
		{name: "database down", database: pinger{err: errors.New("refused")}, want: http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			newTestRouter(tt.database).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRouteGuards(t *testing.T) {
	router := newTestRouter(pinger{})

	tests := []struct {
		name   string
		method string
		path   string
		auth   string
		want   int
	}{
		{name: "no token", method: http.MethodGet, path: "/api/countdowns", want: http.StatusUnauthorized},
		{name: "garbage token", method: http.MethodGet, path: "/api/countdowns", auth: "Bearer nope", want: http.StatusUnauthorized},
		{name: "receiver cannot create", method: http.MethodPost, path: "/api/countdowns", auth: bearer(t, store.RoleReceiver), want: http.StatusForbidden},
		{name: "receiver cannot generate qr", method: http.MethodPost, path: "/api/countdowns/" + uuid.NewString() + "/generate-qr", auth: bearer(t, store.RoleReceiver), want: http.StatusForbidden},
		{name: "creator cannot unlock", method: http.MethodPost, path: "/api/receiver/unlock-day", auth: bearer(t, store.RoleCreator), want: http.StatusForbidden},
		{name: "creator cannot list assignments", method: http.MethodGet, path: "/api/receiver/countdowns", auth: bearer(t, store.RoleCreator), want: http.StatusForbidden},
		{name: "unknown route", method: http.MethodGet, path: "/api/nope", want: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader("{}"))
			req.Header.Set("Content-Type", "application/json")
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}
}
