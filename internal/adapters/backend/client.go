package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"kizuna-dashboard/internal/domain/campaigns"
	"kizuna-dashboard/internal/domain/pets"
	"kizuna-dashboard/internal/domain/reminders"
	"kizuna-dashboard/internal/domain/settings"
	"kizuna-dashboard/internal/domain/stats"
	"kizuna-dashboard/internal/platform/circuitbreaker"
	"kizuna-dashboard/internal/platform/httpclient"
	"kizuna-dashboard/internal/platform/metrics"
)

var ErrNotConfigured = errors.New("clinic backend not configured")

type Config struct {
	BaseURL string
	Timeout time.Duration
	Breaker circuitbreaker.Settings
}

// Client es el gateway tipado hacia el backend de la clínica.
// Implementa los puertos Backend de cada módulo de dominio.
type Client struct {
	http *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, ErrNotConfigured
	}
	hc, err := httpclient.NewWithBaseURL(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	hc.WithBreaker("clinic-backend", cfg.Breaker)
	return &Client{http: hc}, nil
}

// ---- pets ----

func (c *Client) ListPets(ctx context.Context) ([]pets.Pet, error) {
	var out []pets.Pet
	err := c.call(ctx, "list_pets", http.MethodGet, "/pets", nil, &out)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []pets.Pet{}
	}
	return out, nil
}

func (c *Client) CreatePet(ctx context.Context, p pets.NewPet) (pets.Pet, error) {
	var out pets.Pet
	err := c.call(ctx, "create_pet", http.MethodPost, "/pets", p, &out)
	return out, err
}

func (c *Client) DeletePet(ctx context.Context, id string) error {
	return c.call(ctx, "delete_pet", http.MethodDelete, "/pets/"+url.PathEscape(id), nil, nil)
}

type importResponse struct {
	Success bool   `json:"success"`
	Count   int    `json:"count"`
	Detail  string `json:"detail"`
}

func (c *Client) ImportPets(ctx context.Context, filename string, r io.Reader) (int, error) {
	start := time.Now()
	var out importResponse
	err := c.http.DoMultipart(ctx, "/pets/import-excel", nil, "file", filename, r, &out)
	if err == nil && !out.Success {
		// 2xx con success=false: el backend respondió, se trata como rechazo.
		body, _ := json.Marshal(map[string]string{"detail": out.Detail})
		err = &httpclient.HTTPError{StatusCode: http.StatusOK, Body: string(body)}
	}
	metrics.ObserveBackend("import_pets", start, err)
	if err != nil {
		return 0, err
	}
	return out.Count, nil
}

// ---- settings ----

func (c *Client) GetSettings(ctx context.Context) (settings.Settings, error) {
	var out settings.Settings
	err := c.call(ctx, "get_settings", http.MethodGet, "/settings", nil, &out)
	return out, err
}

func (c *Client) SaveSettings(ctx context.Context, s settings.Settings) error {
	return c.call(ctx, "save_settings", http.MethodPost, "/settings", s, nil)
}

// ---- reminders ----

type generateResponse struct {
	Message string `json:"message"`
}

func (c *Client) GenerateReminder(ctx context.Context, req reminders.GenerateRequest) (string, error) {
	var out generateResponse
	if err := c.call(ctx, "generate_reminder", http.MethodPost, "/reminders/generate", req, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *Client) SendReminder(ctx context.Context, req reminders.SendRequest) error {
	return c.call(ctx, "send_reminder", http.MethodPost, "/reminders/send", req, nil)
}

// ---- campaigns ----

func (c *Client) ListCampaigns(ctx context.Context) ([]campaigns.Campaign, error) {
	var out []campaigns.Campaign
	if err := c.call(ctx, "list_campaigns", http.MethodGet, "/campaigns", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []campaigns.Campaign{}
	}
	return out, nil
}

func (c *Client) CreateCampaign(ctx context.Context, req campaigns.CreateRequest) (campaigns.CreateResult, error) {
	var out campaigns.CreateResult
	err := c.call(ctx, "create_campaign", http.MethodPost, "/campaigns", req, &out)
	return out, err
}

func (c *Client) ListDrafts(ctx context.Context) ([]campaigns.Draft, error) {
	var out []campaigns.Draft
	if err := c.call(ctx, "list_drafts", http.MethodGet, "/agent/drafts", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []campaigns.Draft{}
	}
	return out, nil
}

func (c *Client) ProcessDraft(ctx context.Context, d campaigns.Decision) error {
	return c.call(ctx, "process_draft", http.MethodPost, "/agent/process-draft", d, nil)
}

type autoWishesResponse struct {
	DraftsCreated int `json:"drafts_created"`
}

// GenerateAutoWishes va sin body.
func (c *Client) GenerateAutoWishes(ctx context.Context) (int, error) {
	var out autoWishesResponse
	if err := c.call(ctx, "generate_auto_wishes", http.MethodPost, "/agent/generate-auto-wishes", nil, &out); err != nil {
		return 0, err
	}
	return out.DraftsCreated, nil
}

// ---- insights ----

type insightsRequest struct {
	Stats stats.Stats `json:"stats"`
}

type insightsResponse struct {
	Summary string `json:"summary"`
}

func (c *Client) Insights(ctx context.Context, s stats.Stats) (string, error) {
	var out insightsResponse
	if err := c.call(ctx, "insights", http.MethodPost, "/insights", insightsRequest{Stats: s}, &out); err != nil {
		return "", err
	}
	return out.Summary, nil
}

func (c *Client) call(ctx context.Context, op, method, path string, in, out any) error {
	if c == nil || c.http == nil {
		return ErrNotConfigured
	}
	start := time.Now()
	err := c.http.DoJSON(ctx, method, path, nil, in, out)
	metrics.ObserveBackend(op, start, err)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
