package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"

	"career-path-finder/internal/domain"
)

type PlansRepo struct {
	pool *pgxpool.Pool
}

func NewPlansRepo(pool *pgxpool.Pool) *PlansRepo {
	return &PlansRepo{pool: pool}
}

// Save upserts the plan row. A nil pool (plans DB not configured) is a no-op
// so the service keeps working without Postgres.
func (r *PlansRepo) Save(ctx context.Context, p *domain.Plan) error {
	if r.pool == nil {
		return nil
	}

	profileB, _ := json.Marshal(p.Profile)

	_, err := r.pool.Exec(ctx, `INSERT INTO plans (id, profile, html_plan, resume_locator, pdf_locator, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (id) DO UPDATE SET profile = EXCLUDED.profile, html_plan = EXCLUDED.html_plan, resume_locator = EXCLUDED.resume_locator, pdf_locator = EXCLUDED.pdf_locator, updated_at = EXCLUDED.updated_at`,
		p.ID, profileB, p.HTMLPlan, p.ResumeLocator, p.PDFLocator, p.CreatedAt, p.UpdatedAt)
	return err
}

// SetPDFLocator records the generated PDF's locator on an existing plan row.
func (r *PlansRepo) SetPDFLocator(ctx context.Context, id uuid.UUID, locator string) error {
	if r.pool == nil {
		return nil
	}
	_, err := r.pool.Exec(ctx, `UPDATE plans SET pdf_locator = $2, updated_at = now() WHERE id = $1`, id, locator)
	return err
}
