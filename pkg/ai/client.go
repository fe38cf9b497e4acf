// Package ai calls Azure OpenAI chat completions to turn a career profile
// into an HTML learning plan.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"career-path-finder/internal/config"
	"career-path-finder/internal/model"
)

const systemPrompt = "You are an expert AI career advisor who creates personalized, actionable learning plans."

// Résumé text beyond this many runes is dropped from the prompt.
const maxResumeRunes = 2000

type Client struct {
	endpoint   string
	apiKey     string
	apiVersion string
	deployment string
	http       *http.Client
}

func NewClient(cfg config.OpenAIConfig) *Client {
	return &Client{
		endpoint:   strings.TrimSuffix(cfg.Endpoint, "/"),
		apiKey:     cfg.APIKey,
		apiVersion: cfg.APIVersion,
		deployment: cfg.Deployment,
		http:       &http.Client{Timeout: 120 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// GeneratePlan sends the composed career prompt and returns the model's HTML
// fragment.
func (c *Client) GeneratePlan(ctx context.Context, profile *model.UserProfile, resumeText string) (string, error) {
	reqBody := chatRequest{
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: BuildPrompt(profile, resumeText)},
		},
		Temperature: 0.7,
		MaxTokens:   4000,
	}
	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		c.endpoint, c.deployment, c.apiVersion)

	resp, err := c.doPostWithRetry(ctx, url, b)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var chat chatResponse
	if err := json.Unmarshal(respBytes, &chat); err != nil {
		return "", fmt.Errorf("decode openai response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if chat.Error != nil {
			return "", fmt.Errorf("openai returned status %d: %s", resp.StatusCode, chat.Error.Message)
		}
		return "", fmt.Errorf("openai returned status %d", resp.StatusCode)
	}
	if len(chat.Choices) == 0 {
		return "", fmt.Errorf("openai response has no choices")
	}
	return chat.Choices[0].Message.Content, nil
}

// doPostWithRetry performs an HTTP POST with retry/backoff.
func (c *Client) doPostWithRetry(ctx context.Context, url string, body []byte) (*http.Response, error) {
	attempts := 3
	var lastErr error
	for i := 0; i < attempts; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("api-key", c.apiKey)

		resp, err := c.http.Do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if i < attempts-1 {
			backoff := time.Duration(1<<i) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, lastErr
}

// BuildPrompt composes the career-advisor prompt from the profile and the
// extracted résumé text.
func BuildPrompt(p *model.UserProfile, resumeText string) string {
	var sb strings.Builder
	sb.WriteString(`You are an expert AI career advisor. Based on the following information about the user, create a comprehensive, personalized learning path to help them become a "Tech Freak in AI".

User Profile:
`)
	fmt.Fprintf(&sb, "- Experience Level: %s\n", p.ExperienceLevel)
	fmt.Fprintf(&sb, "- Current Job Role: %s\n", p.JobRole)
	fmt.Fprintf(&sb, "- Interests: %s\n", strings.Join(p.Interests, ", "))
	fmt.Fprintf(&sb, "- Learning Style: %s\n", p.LearningStyle)
	fmt.Fprintf(&sb, "- Time Commitment: %s\n", p.TimeCommitment)
	fmt.Fprintf(&sb, "- Goals: %s\n", p.Goals)
	fmt.Fprintf(&sb, "- Current Skills: %s\n", p.CurrentSkills)
	fmt.Fprintf(&sb, "- Preferred Technologies: %s\n", p.PreferredTechnologies)

	if resumeText != "" {
		if runes := []rune(resumeText); len(runes) > maxResumeRunes {
			resumeText = string(runes[:maxResumeRunes])
		}
		fmt.Fprintf(&sb, "\nResume/CV Summary:\n%s\n", resumeText)
	}

	sb.WriteString(`
Create a detailed, actionable learning plan in HTML format. The plan should include:

1. **Executive Summary**: Brief overview tailored to their background
2. **Skill Gap Analysis**: What they need to learn based on current level
3. **Learning Roadmap**: Structured in phases (Beginner/Intermediate/Advanced if applicable)
4. **Recommended Resources**: Specific courses, books, projects
5. **Timeline**: Realistic timeframes based on their time commitment
6. **Project Ideas**: Hands-on projects to build portfolio
7. **Career Opportunities**: Potential roles they can target
8. **Next Steps**: Immediate actions to take

Make it motivating, specific, and actionable. Use modern HTML with inline CSS for beautiful formatting.
Use a professional color scheme with:
- Primary color: #6366f1 (indigo)
- Secondary color: #8b5cf6 (purple)
- Accent color: #ec4899 (pink)
- Background: #f8fafc
- Text: #1e293b

Include proper headings, lists, cards, and sections. Make it visually appealing and easy to read.
Do NOT include <html>, <head>, or <body> tags - just the content div that will be inserted into the page.
`)
	return sb.String()
}
