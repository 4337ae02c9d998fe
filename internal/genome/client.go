package genome

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/danielpatrickdp/taste-trainer/go-trainer/internal/signals"
)

// #region client

// Client talks to the external genome engine over JSON/HTTP. The engine owns
// genome computation and signal persistence; this subsystem only consumes
// and produces over its operation contracts.
type Client struct {
	baseURL string
	http    *http.Client

	// Opaque routing fields forwarded unchanged on every submission.
	FolioID   string
	ProjectID string
}

// NewClient creates a Client for the engine at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// NewClientWithHTTP creates a Client with an injected *http.Client.
// Used for testing without a real engine.
func NewClientWithHTTP(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: baseURL, http: hc}
}

// #endregion client

// #region genome

// Genome fetches the current genome snapshot for a profile.
func (c *Client) Genome(ctx context.Context, profileID string) (Snapshot, error) {
	var snap Snapshot
	path := fmt.Sprintf("/v1/profiles/%s/genome", url.PathEscape(profileID))
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("get genome: %w", err)
	}
	return snap, nil
}

// Recompute triggers the engine's administrative genome recompute.
func (c *Client) Recompute(ctx context.Context, profileID string) error {
	path := fmt.Sprintf("/v1/profiles/%s/genome/recompute", url.PathEscape(profileID))
	if err := c.doJSON(ctx, http.MethodPost, path, nil, nil); err != nil {
		return fmt.Errorf("recompute genome: %w", err)
	}
	return nil
}

// #endregion genome

// #region submit

type submitRequest struct {
	Type      signals.Type  `json:"type"`
	OptionID  *string       `json:"optionId"`
	Payload   submitPayload `json:"payload"`
	ProfileID string        `json:"profileId"`
}

type submitPayload struct {
	Topic          string           `json:"topic,omitempty"`
	ArchetypeHint  string           `json:"archetypeHint,omitempty"`
	Prompt         string           `json:"prompt,omitempty"`
	Score          int              `json:"score,omitempty"`
	Polarity       signals.Polarity `json:"polarity,omitempty"`
	SetID          string           `json:"setId,omitempty"`
	Neutral        bool             `json:"neutral,omitempty"`
	OptionIDs      []string         `json:"optionIds,omitempty"`
	Topics         []string         `json:"topics,omitempty"`
	WeightOverride float64          `json:"weightOverride,omitempty"`
	FolioID        string           `json:"folioId,omitempty"`
	ProjectID      string           `json:"projectId,omitempty"`
}

// Submit sends one signal to the engine. Implements signals.Emitter.
// A weight above the unit default travels as weightOverride.
func (c *Client) Submit(ctx context.Context, profileID string, sig signals.Signal) error {
	req := submitRequest{
		Type:      sig.Type,
		ProfileID: profileID,
		Payload: submitPayload{
			Topic:         sig.Data.Topic,
			ArchetypeHint: sig.Data.ArchetypeHint,
			Prompt:        sig.Data.Prompt,
			Score:         sig.Data.Score,
			Polarity:      sig.Data.Polarity,
			SetID:         sig.Data.SetID,
			Neutral:       sig.Data.Neutral,
			OptionIDs:     sig.Data.OptionIDs,
			Topics:        sig.Data.Topics,
			FolioID:       c.FolioID,
			ProjectID:     c.ProjectID,
		},
	}
	if sig.Data.OptionID != "" {
		req.OptionID = &sig.Data.OptionID
	}
	if sig.Weight != signals.UnitWeight {
		req.Payload.WeightOverride = sig.Weight
	}

	path := fmt.Sprintf("/v1/profiles/%s/signals", url.PathEscape(profileID))
	if err := c.doJSON(ctx, http.MethodPost, path, req, nil); err != nil {
		return fmt.Errorf("submit signal: %w", err)
	}
	return nil
}

// #endregion submit

// #region signals

type signalsResponse struct {
	Signals []signals.Signal `json:"signals"`
}

// Signals fetches the most recent signals for a profile, newest first.
func (c *Client) Signals(ctx context.Context, profileID string, limit int) ([]signals.Signal, error) {
	path := fmt.Sprintf("/v1/profiles/%s/signals?limit=%s",
		url.PathEscape(profileID), strconv.Itoa(limit))
	var resp signalsResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get signals: %w", err)
	}
	return resp.Signals, nil
}

// #endregion signals

// #region reference

// ArchetypeCatalog fetches the static archetype reference data.
func (c *Client) ArchetypeCatalog(ctx context.Context) (ArchetypeCatalog, error) {
	var cat ArchetypeCatalog
	if err := c.doJSON(ctx, http.MethodGet, "/v1/archetypes", nil, &cat); err != nil {
		return ArchetypeCatalog{}, fmt.Errorf("get archetype catalog: %w", err)
	}
	return cat, nil
}

// Gamification fetches display-only progress data for a profile.
func (c *Client) Gamification(ctx context.Context, profileID string) (Gamification, error) {
	path := fmt.Sprintf("/v1/profiles/%s/gamification", url.PathEscape(profileID))
	var g Gamification
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &g); err != nil {
		return Gamification{}, fmt.Errorf("get gamification: %w", err)
	}
	return g, nil
}

// #endregion reference

// #region transport

// doJSON performs one JSON round-trip against the engine.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("engine request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("engine returned %d: %s", resp.StatusCode, string(raw))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// #endregion transport
