package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"career-path-finder/internal/config"
	"career-path-finder/internal/model"
	"career-path-finder/internal/storage"
	"career-path-finder/internal/usecase"
)

type stubAI struct{ html string }

func (s *stubAI) GeneratePlan(_ context.Context, _ *model.UserProfile, _ string) (string, error) {
	return s.html, nil
}

type stubRenderer struct{ pdf []byte }

func (s *stubRenderer) RenderHTMLToPDF(_ context.Context, _ string) ([]byte, error) {
	return s.pdf, nil
}

func newTestApp(t *testing.T) (*fiber.App, *storage.Manager) {
	t.Helper()
	store, err := storage.NewManager(context.Background(), config.StorageConfig{LocalDir: t.TempDir()})
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	processor := usecase.NewProcessor(&stubAI{html: "<div>plan</div>"}, &stubRenderer{pdf: []byte("%PDF-1.7")}, store, nil)

	app := fiber.New()
	NewHandler(processor, store, t.TempDir()).Register(app)
	return app, store
}

func planForm(t *testing.T, withResume bool) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fields := map[string]string{
		"experience_level": "beginner",
		"job_role":         "data analyst",
		"interests":        "deep learning, mlops",
		"learning_style":   "visual",
		"time_commitment":  "8 hours/week",
		"goals":            "become an ML engineer",
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if withResume {
		fw, err := w.CreateFormFile("resume", "resume.txt")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write([]byte("five years of SQL and Python")); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func TestHealth(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptestRequest(http.MethodGet, "/health", nil, ""))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestCORSAllowsAnyOrigin(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptestRequest(http.MethodGet, "/health", nil, "")
	req.Header.Set(fiber.HeaderOrigin, "https://frontend.example.com")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get(fiber.HeaderAccessControlAllowOrigin); got != "*" {
		t.Fatalf("expected wildcard allow-origin, got %q", got)
	}
}

func TestGeneratePlanEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	body, ctype := planForm(t, true)
	resp, err := app.Test(httptestRequest(http.MethodPost, "/api/generate-plan", body, ctype), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var out struct {
		Success  bool   `json:"success"`
		HTMLPlan string `json:"html_plan"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !out.Success || out.HTMLPlan != "<div>plan</div>" {
		t.Fatalf("unexpected response %+v", out)
	}
}

func TestGeneratePlanEndpointRejectsIncompleteForm(t *testing.T) {
	app, _ := newTestApp(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	_ = w.WriteField("job_role", "dev")
	_ = w.Close()

	resp, err := app.Test(httptestRequest(http.MethodPost, "/api/generate-plan", &buf, w.FormDataContentType()), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestDownloadPDFEndpointLocalMode(t *testing.T) {
	app, _ := newTestApp(t)

	body := strings.NewReader(`{"html_plan":"<div>plan</div>","user_profile":{}}`)
	req := httptestRequest(http.MethodPost, "/api/download-pdf", body, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get(fiber.HeaderContentType); ct != "application/pdf" {
		t.Fatalf("expected pdf content type, got %q", ct)
	}
	content, _ := io.ReadAll(resp.Body)
	if !strings.HasPrefix(string(content), "%PDF") {
		t.Fatal("expected pdf bytes in response")
	}
}

func TestDownloadPDFEndpointRejectsBadPlanID(t *testing.T) {
	app, _ := newTestApp(t)

	body := strings.NewReader(`{"plan_id":"not-a-uuid","html_plan":"<p>x</p>"}`)
	resp, err := app.Test(httptestRequest(http.MethodPost, "/api/download-pdf", body, fiber.MIMEApplicationJSON), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestDownloadPDFEndpointEmptyPlan(t *testing.T) {
	app, _ := newTestApp(t)

	body := strings.NewReader(`{"html_plan":""}`)
	resp, err := app.Test(httptestRequest(http.MethodPost, "/api/download-pdf", body, fiber.MIMEApplicationJSON), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestGetFileEndpoint(t *testing.T) {
	app, store := newTestApp(t)

	if _, err := store.Save(context.Background(), storage.FolderGenerated, "plan.pdf", []byte("%PDF-1.7")); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	resp, err := app.Test(httptestRequest(http.MethodGet, "/api/files/generated/plan.pdf", nil, ""))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get(fiber.HeaderContentType); !strings.Contains(ct, "application/pdf") {
		t.Fatalf("expected pdf content type, got %q", ct)
	}

	resp, err = app.Test(httptestRequest(http.MethodGet, "/api/files/generated/missing.pdf", nil, ""))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}

	resp, err = app.Test(httptestRequest(http.MethodGet, "/api/files/secrets/plan.pdf", nil, ""))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown folder, got %d", resp.StatusCode)
	}
}

func httptestRequest(method, target string, body io.Reader, contentType string) *http.Request {
	req, _ := http.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set(fiber.HeaderContentType, contentType)
	}
	return req
}
