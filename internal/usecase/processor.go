package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"career-path-finder/internal/domain"
	"career-path-finder/internal/extract"
	"career-path-finder/internal/model"
	"career-path-finder/internal/storage"
)

// ErrInvalidInput marks failures the caller should report as a bad request
// rather than a server fault.
var ErrInvalidInput = errors.New("invalid input")

const maxResumeBytes = 10 << 20 // 10 MiB

type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

type PlanGenerator interface {
	GeneratePlan(ctx context.Context, profile *model.UserProfile, resumeText string) (string, error)
}

type PlansRepo interface {
	Save(ctx context.Context, p *domain.Plan) error
	SetPDFLocator(ctx context.Context, id uuid.UUID, locator string) error
}

// FileStore is the slice of the storage manager the processor needs.
type FileStore interface {
	Save(ctx context.Context, folder, name string, content []byte) (string, error)
	Get(ctx context.Context, folder, name string) ([]byte, bool, error)
	UsingRemote() bool
}

type Processor struct {
	ai       PlanGenerator
	renderer Renderer
	store    FileStore
	repo     PlansRepo
}

func NewProcessor(ai PlanGenerator, renderer Renderer, store FileStore, repo PlansRepo) *Processor {
	return &Processor{ai: ai, renderer: renderer, store: store, repo: repo}
}

type PlanResult struct {
	PlanID   uuid.UUID
	HTMLPlan string
	Profile  *model.UserProfile
}

type PDFResult struct {
	Filename string
	Locator  string
	Remote   bool
	Content  []byte
}

// GeneratePlan validates the profile, stores and extracts the optional
// résumé, asks the AI for an HTML plan and records the plan best-effort.
func (p *Processor) GeneratePlan(ctx context.Context, profile *model.UserProfile, resumeName string, resumeBytes []byte) (*PlanResult, error) {
	if err := model.ValidateProfile(profile); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	resumeText := ""
	resumeLocator := ""
	if resumeName != "" && len(resumeBytes) > 0 {
		if len(resumeBytes) > maxResumeBytes {
			return nil, fmt.Errorf("%w: file too large, max size is 10MB", ErrInvalidInput)
		}

		safeName := time.Now().Format("20060102_150405") + "_" + filepath.Base(resumeName)
		locator, err := p.store.Save(ctx, storage.FolderUploads, safeName, resumeBytes)
		if err != nil {
			return nil, fmt.Errorf("save resume: %w", err)
		}
		resumeLocator = locator
		slog.Info("resume saved", "locator", locator)

		resumeText, err = extract.Text(resumeName, resumeBytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	htmlPlan, err := p.ai.GeneratePlan(ctx, profile, resumeText)
	if err != nil {
		return nil, fmt.Errorf("generate plan: %w", err)
	}

	plan := &domain.Plan{
		ID:            uuid.New(),
		Profile:       profile,
		HTMLPlan:      htmlPlan,
		ResumeLocator: resumeLocator,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if p.repo != nil {
		if err := p.repo.Save(ctx, plan); err != nil {
			slog.Warn("failed to persist plan", "id", plan.ID, "error", err)
		}
	}

	return &PlanResult{PlanID: plan.ID, HTMLPlan: htmlPlan, Profile: profile}, nil
}

// DownloadPDF renders the plan HTML to PDF and stores it under "generated".
// In remote mode the caller gets the blob URL; in local mode the PDF bytes
// are returned for a direct file response. A non-nil planID records the PDF
// locator on the plan row, best-effort like the plan itself.
func (p *Processor) DownloadPDF(ctx context.Context, planID uuid.UUID, htmlPlan string) (*PDFResult, error) {
	if strings.TrimSpace(htmlPlan) == "" {
		return nil, fmt.Errorf("%w: empty html_plan", ErrInvalidInput)
	}

	doc := printDocument(htmlPlan, time.Now())

	var pdfBytes []byte
	var renderErr error
	attempts := 3
	for i := 0; i < attempts; i++ {
		pdfBytes, renderErr = p.renderer.RenderHTMLToPDF(ctx, doc)
		if renderErr == nil {
			// validate basic PDF signature
			if len(pdfBytes) > 0 && strings.HasPrefix(string(pdfBytes), "%PDF") {
				break
			}
			renderErr = fmt.Errorf("invalid PDF output (len=%d)", len(pdfBytes))
		}
		slog.Warn("pdf render attempt failed", "attempt", i+1, "error", renderErr)
		if i < attempts-1 {
			backoff := time.Duration(1<<i) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	if renderErr != nil {
		return nil, fmt.Errorf("render pdf: %w", renderErr)
	}

	filename := fmt.Sprintf("ai_career_plan_%s.pdf", time.Now().Format("20060102_150405"))
	locator, err := p.store.Save(ctx, storage.FolderGenerated, filename, pdfBytes)
	if err != nil {
		return nil, fmt.Errorf("save pdf: %w", err)
	}

	// in remote mode the caller only gets a URL, so confirm the stored
	// object is actually retrievable before handing it out
	if p.store.UsingRemote() {
		if _, found, verr := p.store.Get(ctx, storage.FolderGenerated, filename); verr != nil {
			return nil, fmt.Errorf("verify stored pdf: %w", verr)
		} else if !found {
			return nil, fmt.Errorf("verify stored pdf: %s not retrievable after save", filename)
		}
	}

	if p.repo != nil && planID != uuid.Nil {
		if err := p.repo.SetPDFLocator(ctx, planID, locator); err != nil {
			slog.Warn("failed to record pdf locator", "id", planID, "error", err)
		}
	}

	return &PDFResult{
		Filename: filename,
		Locator:  locator,
		Remote:   p.store.UsingRemote(),
		Content:  pdfBytes,
	}, nil
}
