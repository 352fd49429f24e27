package server

import (
	"bytes"

	"drift-detector/core/logger"
	"drift-detector/core/report"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// New builds the Fiber app serving the newest report from reportDir.
// Routes:
//
//	GET /          the HTML report page
//	GET /api/report  the raw report JSON
func New(reportDir string, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true, // startup is logged by the caller
	})

	// Request ID first, so every log line of a request correlates.
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("request_id", uuid.NewString())
		return c.Next()
	})

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRequestID(log, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	app.Get("/api/report", func(c *fiber.Ctx) error {
		r, err := latestReport(reportDir)
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return c.JSON(r)
	})

	app.Get("/", func(c *fiber.Ctx) error {
		r, err := latestReport(reportDir)
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		var buf bytes.Buffer
		if err := r.RenderHTML(&buf); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Send(buf.Bytes())
	})

	return app
}

// latestReport loads the most recent run from disk on every request, so a
// fresh compare shows up without restarting the server.
func latestReport(reportDir string) (*report.Report, error) {
	path, err := report.LatestJSON(reportDir)
	if err != nil {
		return nil, err
	}
	return report.LoadJSON(path)
}
