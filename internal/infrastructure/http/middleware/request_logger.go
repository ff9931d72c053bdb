package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RequestLogger logs one structured entry per request. Server errors are
// logged at error level, client errors at warn.
func RequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// Let echo write the response so the logged status is final
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			level := zapcore.InfoLevel
			switch {
			case res.Status >= 500:
				level = zapcore.ErrorLevel
			case res.Status >= 400:
				level = zapcore.WarnLevel
			}

			if ce := logger.Check(level, "http.request"); ce != nil {
				ce.Write(
					zap.String("request_id", res.Header().Get(echo.HeaderXRequestID)),
					zap.String("method", req.Method),
					zap.String("uri", req.RequestURI),
					zap.String("route", c.Path()),
					zap.Int("status", res.Status),
					zap.Duration("latency", time.Since(start)),
					zap.String("remote_ip", c.RealIP()),
				)
			}
			return nil
		}
	}
}
