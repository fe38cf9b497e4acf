package http

import (
	"errors"
	"io"
	"log/slog"
	"mime"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/google/uuid"

	"career-path-finder/internal/model"
	"career-path-finder/internal/storage"
	"career-path-finder/internal/usecase"
)

type Handler struct {
	processor *usecase.Processor
	store     *storage.Manager
	staticDir string
}

func NewHandler(p *usecase.Processor, store *storage.Manager, staticDir string) *Handler {
	return &Handler{processor: p, store: store, staticDir: staticDir}
}

// Register mounts all routes on the app. The API is open to any origin, the
// page may be hosted elsewhere than the API.
func (h *Handler) Register(app *fiber.App) {
	app.Use(cors.New())

	app.Get("/", h.Index)
	app.Post("/api/generate-plan", h.GeneratePlan)
	app.Post("/api/download-pdf", h.DownloadPDF)
	app.Get("/api/files/:folder/:filename", h.GetFile)
	app.Get("/health", h.Health)
}

func (h *Handler) Index(c *fiber.Ctx) error {
	page, err := os.ReadFile(filepath.Join(h.staticDir, "index.html"))
	if err != nil {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString("<html><body><h1>AI Tech Career Path Finder</h1><p>Please ensure static/index.html exists</p></body></html>")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(page)
}

// GeneratePlan accepts the career form (multipart, optional "resume" file)
// and responds with the AI-generated HTML plan.
func (h *Handler) GeneratePlan(c *fiber.Ctx) error {
	profile := &model.UserProfile{
		ExperienceLevel:       c.FormValue("experience_level"),
		JobRole:               c.FormValue("job_role"),
		Interests:             model.ParseInterests(c.FormValue("interests")),
		LearningStyle:         c.FormValue("learning_style"),
		TimeCommitment:        c.FormValue("time_commitment"),
		Goals:                 c.FormValue("goals"),
		CurrentSkills:         c.FormValue("current_skills"),
		PreferredTechnologies: c.FormValue("preferred_technologies"),
	}

	resumeName := ""
	var resumeBytes []byte
	if fh, err := c.FormFile("resume"); err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unreadable resume upload"})
		}
		resumeBytes, err = io.ReadAll(f)
		f.Close()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unreadable resume upload"})
		}
		resumeName = fh.Filename
	}

	result, err := h.processor.GeneratePlan(c.Context(), profile, resumeName, resumeBytes)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		slog.Error("generate plan failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to generate plan"})
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"plan_id":      result.PlanID.String(),
		"html_plan":    result.HTMLPlan,
		"user_profile": result.Profile,
	})
}

type downloadReq struct {
	PlanID      string                 `json:"plan_id"`
	HTMLPlan    string                 `json:"html_plan"`
	UserProfile map[string]interface{} `json:"user_profile"`
}

// DownloadPDF renders the plan to PDF. Remote mode answers with the blob
// URL; local mode streams the PDF bytes directly.
func (h *Handler) DownloadPDF(c *fiber.Ctx) error {
	var req downloadReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	planID := uuid.Nil
	if req.PlanID != "" {
		id, err := uuid.Parse(req.PlanID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid plan_id"})
		}
		planID = id
	}

	result, err := h.processor.DownloadPDF(c.Context(), planID, req.HTMLPlan)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		slog.Error("download pdf failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to generate PDF"})
	}

	if result.Remote {
		return c.JSON(fiber.Map{
			"success":      true,
			"filename":     result.Filename,
			"download_url": result.Locator,
			"message":      "PDF generated successfully",
		})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+result.Filename+`"`)
	return c.Send(result.Content)
}

// GetFile serves a stored object back to the client.
func (h *Handler) GetFile(c *fiber.Ctx) error {
	folder := c.Params("folder")
	name := c.Params("filename")

	content, found, err := h.store.Get(c.Context(), folder, name)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "file not found"})
	}

	if ctype := mime.TypeByExtension(filepath.Ext(name)); ctype != "" {
		c.Set(fiber.HeaderContentType, ctype)
	} else {
		c.Set(fiber.HeaderContentType, "application/octet-stream")
	}
	return c.Send(content)
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "healthy", "service": "AI Tech Career Path Finder"})
}
