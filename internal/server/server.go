// Package server exposes the match pipeline over HTTP.
package server

import (
	"errors"
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"

	"resume-matcher/internal/config"
	"resume-matcher/internal/domain"
	"resume-matcher/internal/extractor"
	"resume-matcher/internal/report"
	"resume-matcher/internal/skills"
)

const (
	formResume         = "resume"
	formRequiredSkills = "required_skills"

	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimePDF  = "application/pdf"
)

// Server serves resume matching requests.
type Server struct {
	app *fiber.App
	svc domain.MatchService
	log logrus.FieldLogger
}

// New builds the fiber app and registers the routes.
func New(svc domain.MatchService, cfg config.ServerConfig, logger logrus.FieldLogger) *Server {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	s := &Server{svc: svc, log: logger}
	s.app = fiber.New(fiber.Config{
		AppName:               "resume-matcher",
		BodyLimit:             cfg.BodyLimitMB * 1024 * 1024,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})
	s.app.Use(fiberRecover.New())
	s.app.Use(requestLogger(logger))
	s.app.Get("/health", s.health)

	api := s.app.Group("/api/v1")
	api.Get("/vocabulary", s.vocabulary)
	api.Post("/match", s.match)
	api.Post("/match/report.xlsx", s.matchXLSX)
	api.Post("/match/report.pdf", s.matchPDF)
	return s
}

// App returns the underlying fiber app.
func (s *Server) App() *fiber.App { return s.app }

// Listen serves until Shutdown is called.
func (s *Server) Listen(addr string) error {
	s.log.WithField("addr", addr).Info("http server listening")
	return s.app.Listen(addr)
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) vocabulary(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"vocabulary": s.svc.Vocabulary()})
}

func (s *Server) match(c *fiber.Ctx) error {
	result, err := s.analyze(c)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func (s *Server) matchXLSX(c *fiber.Ctx) error {
	result, err := s.analyze(c)
	if err != nil {
		return err
	}
	buf, err := report.WriteXLSX(result)
	if err != nil {
		return err
	}
	c.Attachment("resume-match.xlsx")
	c.Set(fiber.HeaderContentType, mimeXLSX)
	return c.Send(buf.Bytes())
}

func (s *Server) matchPDF(c *fiber.Ctx) error {
	result, err := s.analyze(c)
	if err != nil {
		return err
	}
	buf, err := report.WritePDF(result)
	if err != nil {
		return err
	}
	c.Attachment("resume-match.pdf")
	c.Set(fiber.HeaderContentType, mimePDF)
	return c.Send(buf.Bytes())
}

// analyze reads the uploaded resume into memory and runs the pipeline on it.
func (s *Server) analyze(c *fiber.Ctx) (*domain.MatchResult, error) {
	fh, err := c.FormFile(formResume)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "resume file is required")
	}
	f, err := fh.Open()
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "cannot open uploaded resume")
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "cannot read uploaded resume")
	}

	required := c.FormValue(formRequiredSkills, skills.DefaultRequired)
	result, err := s.svc.Analyze(c.UserContext(), data, required)
	if err != nil {
		var extractionErr *extractor.ExtractionError
		if errors.As(err, &extractionErr) {
			return nil, fiber.NewError(fiber.StatusUnprocessableEntity, fmt.Sprintf("%s: %v", fh.Filename, err))
		}
		return nil, err
	}
	return result, nil
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var ferr *fiber.Error
	if errors.As(err, &ferr) {
		code = ferr.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
