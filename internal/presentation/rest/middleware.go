package rest

import (
	"strconv"
	"time"

	"github.com/dhank77/undangan.love/internal/application/errs"
	"github.com/dhank77/undangan.love/internal/infra/auth"
	"github.com/dhank77/undangan.love/internal/infra/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	requestIDKey = "requestid"
	identityKey  = "identity"
)

// RequestLogger logs one line per request, tagged with a request id that is
// echoed back in X-Request-ID.
func RequestLogger(logger *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		requestID := c.Get(fiber.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Locals(requestIDKey, requestID)
		c.Set(fiber.HeaderXRequestID, requestID)

		renderError(c, c.Next())

		statusCode := c.Response().StatusCode()
		entry := logger.WithFields(logrus.Fields{
			"request_id":  requestID,
			"http_method": c.Method(),
			"uri":         c.OriginalURL(),
			"status_code": statusCode,
			"latency_ms":  time.Since(start).Milliseconds(),
			"client_ip":   c.IP(),
		})
		switch {
		case statusCode >= fiber.StatusInternalServerError:
			entry.Error("request completed with server error")
		case statusCode >= fiber.StatusBadRequest:
			entry.Warn("request completed with client error")
		default:
			entry.Info("request completed")
		}
		return nil
	}
}

// Metrics records request counters and latency by route pattern.
func Metrics(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		renderError(c, c.Next())

		endpoint := c.Route().Path
		method := c.Method()
		statusCode := c.Response().StatusCode()
		status := strconv.Itoa(statusCode)

		m.HttpRequestsTotal.WithLabelValues(endpoint, status, method).Inc()
		m.HttpRequestDuration.WithLabelValues(endpoint, method).Observe(time.Since(start).Seconds())
		if statusCode >= 400 && statusCode < 600 {
			m.HttpErrorsTotal.WithLabelValues(endpoint, status, method).Inc()
		}
		return nil
	}
}

// renderError writes err through the app error handler so that middleware
// further out sees the final status code.
func renderError(c *fiber.Ctx, err error) {
	if err == nil {
		return
	}
	if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
		_ = c.SendStatus(fiber.StatusInternalServerError)
	}
}

// Identify resolves the caller when the request carries one. Routes that
// need an owner call identityFrom, which fails with 401 otherwise.
func Identify(provider *auth.IdentityProvider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, err := provider.FromHeader(c.Get(fiber.HeaderAuthorization))
		if err == nil {
			c.Locals(identityKey, identity)
		}
		return c.Next()
	}
}

func identityFrom(c *fiber.Ctx) (*auth.Identity, error) {
	identity, ok := c.Locals(identityKey).(*auth.Identity)
	if !ok || identity == nil {
		return nil, errs.UnauthorizedError{Err: errMissingIdentity}
	}
	return identity, nil
}
