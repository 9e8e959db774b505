package server

import (
	"context"
	"net"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// sessionCookieName identifies anonymous visitors so history and
// palettes stay scoped per browser.
const sessionCookieName = "huecraft_session"

type contextKey string

const sessionContextKey contextKey = "session_id"

// sessionID returns the session identifier attached by withSession.
func sessionID(r *http.Request) string {
	if id, ok := r.Context().Value(sessionContextKey).(string); ok {
		return id
	}
	return ""
}

// withSession assigns a session cookie to first-time visitors and puts
// the session identifier on the request context.
func (app *Application) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id string
		if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
			id = cookie.Value
		} else {
			id = uuid.New().String()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookieName,
				Value:    id,
				Path:     "/",
				MaxAge:   int((30 * 24 * time.Hour).Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
				Secure:   !app.Config.DevMode,
			})
		}
		ctx := context.WithValue(r.Context(), sessionContextKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func cleanOrigin(origin string) string {
	cleaned := strings.TrimPrefix(origin, "https://")
	cleaned = strings.TrimPrefix(cleaned, "http://")
	if idx := strings.Index(cleaned, "/"); idx != -1 {
		cleaned = cleaned[:idx]
	}
	return cleaned
}

var localhostPattern = regexp.MustCompile(`^localhost(:\d+)?$`)

func isAllowedOrigin(origin string, allowed []string) bool {
	cleaned := cleanOrigin(origin)

	if localhostPattern.MatchString(cleaned) {
		return true
	}

	for _, a := range allowed {
		if cleanOrigin(a) == cleaned {
			return true
		}
	}
	return false
}

// withCORS answers preflight requests and rejects browsers sending a
// disallowed Origin header. Requests without an Origin pass through.
func (app *Application) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			next.ServeHTTP(w, r)
			return
		}

		if !isAllowedOrigin(origin, app.Config.AllowedOrigins) {
			app.respondError(w, http.StatusForbidden, "origin not allowed: "+cleanOrigin(origin))
			return
		}

		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withSecurityHeaders sets conservative browser protections on every
// response.
func (app *Application) withSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiter enforces a per-client request budget keyed by remote IP.
type rateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	rps     rate.Limit
	burst   int
}

func newRateLimiter(rps int) *rateLimiter {
	if rps <= 0 {
		rps = 20
	}
	return &rateLimiter{
		clients: make(map[string]*clientLimiter),
		rps:     rate.Limit(rps),
		burst:   rps * 2,
	}
}

func (rl *rateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	c, ok := rl.clients[ip]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.clients[ip] = c
	}
	c.lastSeen = time.Now()

	if len(rl.clients) > 10000 {
		rl.evictStale()
	}
	return c.limiter.Allow()
}

func (rl *rateLimiter) evictStale() {
	cutoff := time.Now().Add(-10 * time.Minute)
	for ip, c := range rl.clients {
		if c.lastSeen.Before(cutoff) {
			delete(rl.clients, ip)
		}
	}
}

func (app *Application) withRateLimit(rl *rateLimiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if !rl.allow(ip) {
			app.respondError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withRequestLogging records each request at debug level.
func (app *Application) withRequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		app.Logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start).String(),
		)
	})
}
