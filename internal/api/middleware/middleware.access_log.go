package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"video_tube/internal/logger"
)

// RequestLogger ghi access log cho mỗi request: method, path, status,
// latency, IP và request ID. Log đi vào access logger riêng, không lẫn
// với log ứng dụng.
func RequestLogger() fiber.Handler {
	accessLog := logger.GetAccessLogger()
	return func(c fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
		}

		entry := accessLog.WithFields(map[string]interface{}{
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
			"ip":         c.IP(),
		})
		if rid := c.GetRespHeader("X-Request-ID"); rid != "" {
			entry = entry.WithField("request_id", rid)
		}

		if status >= 500 {
			entry.Error("request")
		} else {
			entry.Info("request")
		}
		return err
	}
}
