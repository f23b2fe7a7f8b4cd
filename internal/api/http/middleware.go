package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"mountainride-backend/internal/config"
	"mountainride-backend/internal/logger"
	"mountainride-backend/internal/security"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with an id, reusing the caller's when present
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(logger.WithRequestID(r.Context(), id)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// Logging writes one line per request with its outcome
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.InfoContext(r.Context(), "HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// Recovery turns a handler panic into a 500 response
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				writeError(w, r, fmt.Errorf("panic: %v", rec))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

type AuthMiddleware struct {
	tokenManager security.TokenManager
}

func NewAuthMiddleware(tm security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokenManager: tm}
}

// Handler authenticates the request against the security level of the
// matched route template.
func (a *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		level := config.SecurityAccess
		if route := mux.CurrentRoute(r); route != nil {
			if tpl, err := route.GetPathTemplate(); err == nil {
				level = config.GetSecurityLevel(r.Method, tpl)
			}
		}

		if level == config.SecurityPublic {
			next.ServeHTTP(w, r)
			return
		}

		token, err := extractToken(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		claims, err := a.tokenManager.ValidateToken(token)
		if err != nil {
			writeError(w, r, err)
			return
		}

		if level == config.SecurityAdmin && !claims.IsAdmin() {
			writeError(w, r, errForbidden)
			return
		}

		next.ServeHTTP(w, r.WithContext(withEmployee(r.Context(), claims)))
	})
}

func extractToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", errUnauthenticated
	}
	token := header
	if len(token) > 7 && strings.ToUpper(token[0:7]) == "BEARER " {
		token = token[7:]
	}
	return token, nil
}
