package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"underwriting_service/internal/infrastructure/cache"
	"underwriting_service/internal/infrastructure/logger"
	"underwriting_service/pkg"

	"github.com/gin-gonic/gin"
)

const (
	IdempotencyHeader = "Idempotency-Key"
	ReplayedHeader    = "Idempotent-Replayed"

	maxKeyLength = 128
)

var (
	errKeyReused  = pkg.NewDomainErrorSimple("IDEMPOTENCY_KEY_REUSED", "Idempotency key was used for a different request", http.StatusUnprocessableEntity)
	errInProgress = pkg.NewDomainErrorSimple("REQUEST_IN_PROGRESS", "A request with this idempotency key is still being processed", http.StatusConflict)
	errKeyInvalid = pkg.NewDomainErrorSimple("INVALID_IDEMPOTENCY_KEY", "Invalid idempotency key", http.StatusBadRequest)
)

type capturingWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *capturingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *capturingWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency replays the stored response when a mutating request repeats its
// Idempotency-Key. Requests without the header pass through untouched.
//
// Responses with status >= 500 are not stored; the key is released so the client can retry.
// When the store itself fails the request runs without replay protection.
func Idempotency(store cache.IdempotencyStore, ttl time.Duration, log *logger.Logger) gin.HandlerFunc {
	log = logger.OrNop(log).Component("http.idempotency")
	return func(c *gin.Context) {
		key := strings.TrimSpace(c.GetHeader(IdempotencyHeader))
		if key == "" || store == nil || !mutating(c.Request.Method) {
			c.Next()
			return
		}
		if len(key) > maxKeyLength {
			abort(c, errKeyInvalid)
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			abort(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		fp := fingerprint(c.Request.Method, c.Request.URL.Path, body)

		ctx := c.Request.Context()
		owned, err := store.Reserve(ctx, key, ttl)
		if err != nil {
			log.Warn("idempotency store unavailable", "error", err)
			c.Next()
			return
		}
		if !owned {
			replay(c, store, key, fp, log)
			return
		}

		w := &capturingWriter{ResponseWriter: c.Writer}
		c.Writer = w
		saved := false
		// A panicking handler skips the Save below; the key must not stay in flight.
		defer func() {
			if saved {
				return
			}
			if err := store.Release(ctx, key); err != nil {
				log.Warn("idempotency release failed", "error", err)
			}
		}()
		c.Next()

		status := w.Status()
		if status >= http.StatusInternalServerError {
			return
		}
		resp := cache.StoredResponse{
			Status:      status,
			ContentType: w.Header().Get("Content-Type"),
			Body:        w.body.Bytes(),
			Fingerprint: fp,
		}
		if err := store.Save(ctx, key, resp, ttl); err != nil {
			log.Warn("idempotency save failed", "error", err)
			return
		}
		saved = true
	}
}

func replay(c *gin.Context, store cache.IdempotencyStore, key, fp string, log *logger.Logger) {
	stored, ok, err := store.Get(c.Request.Context(), key)
	switch {
	case errors.Is(err, cache.ErrKeyInFlight):
		abort(c, errInProgress)
	case err != nil:
		log.Warn("idempotency lookup failed", "error", err)
		c.Next()
	case !ok:
		// expired between Reserve and Get
		c.Next()
	case stored.Fingerprint != fp:
		abort(c, errKeyReused)
	default:
		c.Header(ReplayedHeader, "true")
		c.Data(stored.Status, stored.ContentType, stored.Body)
		c.Abort()
	}
}

func abort(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

func fingerprint(method, path string, body []byte) string {
	h := sha256.New()
	h.Write([]byte(method))
	h.Write([]byte{0})
	h.Write([]byte(path))
	h.Write([]byte{0})
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}
