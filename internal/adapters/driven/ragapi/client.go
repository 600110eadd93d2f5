// Package ragapi provides the HTTP adapter for the remote IntraMate
// document and chat service.
package ragapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/intramate/intramate-cli/internal/core/domain"
	"github.com/intramate/intramate-cli/internal/core/ports/driven"
	"github.com/intramate/intramate-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.RAGGateway = (*Client)(nil)

// Default configuration values.
const (
	DefaultTimeout   = 120 * time.Second
	DefaultBurstSize = 4
)

// Credential headers expected by the remote service on every
// data-plane request.
const (
	headerOpenAIKey = "X-OpenAI-Key"
	headerTavilyKey = "X-Tavily-Key"
)

// Config holds configuration for the remote service client.
type Config struct {
	// BaseURL is the service address (required).
	BaseURL string

	// Timeout is the per-request timeout (default: 120s). Uploads and
	// chat calls can be slow, so the default is generous.
	Timeout time.Duration

	// RequestsPerSecond is the client-side throttle (default: 4).
	RequestsPerSecond float64

	// BurstSize is the throttle burst size (default: 4).
	BurstSize int
}

// Client talks to the remote service over HTTP. Credentials are read
// from the store per request and sent as headers; every operation
// except ValidateKeys fails with domain.ErrNoCredentials before any
// network traffic when no pair is stored. Failures are translated into
// the domain error taxonomy. The client performs no retries.
type Client struct {
	client  *http.Client
	baseURL string
	store   driven.CredentialsStore
	limiter *rate.Limiter
}

// NewClient creates a client for the service at cfg.BaseURL.
func NewClient(cfg Config, store driven.CredentialsStore) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("ragapi: base URL is required")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = domain.DefaultRequestsPerSecond
	}
	if cfg.BurstSize <= 0 {
		cfg.BurstSize = DefaultBurstSize
	}

	return &Client{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		store:   store,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.BurstSize),
	}, nil
}

// errorPayload is the service's error body.
type errorPayload struct {
	Detail string `json:"detail"`
}

// uploadPayload is the POST /upload response format.
type uploadPayload struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Chunks  int    `json:"chunks"`
}

// documentsPayload is the GET /documents response format.
type documentsPayload struct {
	Documents []documentPayload `json:"documents"`
}

type documentPayload struct {
	Name     string   `json:"name"`
	Path     string   `json:"path"`
	Chunks   int      `json:"chunks"`
	Previews []string `json:"previews"`
}

// chatRequest is the POST /chat request format.
type chatRequest struct {
	Question string `json:"question"`
	Language string `json:"language"`
}

// chatPayload is the POST /chat response format.
type chatPayload struct {
	Answer  string `json:"answer"`
	Sources struct {
		Type      string                  `json:"type"`
		Documents []domain.DocumentSource `json:"documents"`
		Web       []domain.WebReference   `json:"web"`
	} `json:"sources"`
}

// summarizeRequest is the POST /summarize request format.
type summarizeRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// summarizePayload is the POST /summarize response format.
type summarizePayload struct {
	Summary string `json:"summary"`
}

// credentials loads the stored key pair, failing before any network
// use when none is available.
func (c *Client) credentials(ctx context.Context) (domain.Credentials, error) {
	creds, err := c.store.Get(ctx)
	if err != nil {
		return domain.Credentials{}, err
	}
	return creds, nil
}

// send applies the rate limit, executes the request, and translates
// transport failures. Callers own the response body.
func (c *Client) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &domain.RemoteError{Category: domain.CategoryTransport, Err: err}
	}
	return resp, nil
}

// remoteError translates a non-success response into the domain
// taxonomy, consuming the body for its detail string.
func remoteError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var payload errorPayload
	_ = json.Unmarshal(body, &payload)
	detail := payload.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	category := domain.CategoryServer
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		category = domain.CategoryAuth
	}
	return &domain.RemoteError{Category: category, Detail: detail}
}

// progressReader reports bytes consumed from the request body.
type progressReader struct {
	r     io.Reader
	sent  int64
	total int64
	fn    driven.ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.sent += int64(n)
		if p.fn != nil {
			p.fn(p.sent, p.total)
		}
	}
	return n, err
}

// UploadDocument sends one file for ingestion as a multipart request.
// The request body is assembled in memory; the pre-upload size gate
// bounds it.
func (c *Client) UploadDocument(ctx context.Context, file domain.PendingFile, progress driven.ProgressFunc) (*driven.UploadResult, error) {
	creds, err := c.credentials(ctx)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(file.Path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", file.Path, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", file.Name)
	if err != nil {
		return nil, fmt.Errorf("building upload request: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("reading %s: %w", file.Path, err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("building upload request: %w", err)
	}

	total := int64(buf.Len())
	body := &progressReader{r: &buf, total: total, fn: progress}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.ContentLength = total
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set(headerOpenAIKey, creds.OpenAIKey)
	req.Header.Set(headerTavilyKey, creds.TavilyKey)

	logger.Debug("uploading %s (%d bytes)", file.Name, file.Size)
	resp, err := c.send(ctx, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, remoteError(resp)
	}

	var payload uploadPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &driven.UploadResult{Chunks: payload.Chunks, Message: payload.Message}, nil
}

// ListDocuments returns the authoritative indexed document list.
func (c *Client) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	creds, err := c.credentials(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/documents", http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set(headerOpenAIKey, creds.OpenAIKey)
	req.Header.Set(headerTavilyKey, creds.TavilyKey)

	resp, err := c.send(ctx, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, remoteError(resp)
	}

	var payload documentsPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	documents := make([]domain.Document, len(payload.Documents))
	for i, doc := range payload.Documents {
		documents[i] = domain.Document{
			Name:       doc.Name,
			Path:       doc.Path,
			ChunkCount: doc.Chunks,
			Previews:   doc.Previews,
		}
	}
	return documents, nil
}

// DeleteDocument removes the document identified by its server path.
func (c *Client) DeleteDocument(ctx context.Context, path string) error {
	creds, err := c.credentials(ctx)
	if err != nil {
		return err
	}

	endpoint := c.baseURL + "/documents/" + url.PathEscape(path)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set(headerOpenAIKey, creds.OpenAIKey)
	req.Header.Set(headerTavilyKey, creds.TavilyKey)

	resp, err := c.send(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return remoteError(resp)
	}
	return nil
}

// Chat asks a question and returns the attributed answer.
func (c *Client) Chat(ctx context.Context, question, language string) (*driven.ChatResult, error) {
	creds, err := c.credentials(ctx)
	if err != nil {
		return nil, err
	}

	jsonBody, err := json.Marshal(chatRequest{Question: question, Language: language})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerOpenAIKey, creds.OpenAIKey)
	req.Header.Set(headerTavilyKey, creds.TavilyKey)

	resp, err := c.send(ctx, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, remoteError(resp)
	}

	var payload chatPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	result := &driven.ChatResult{Answer: payload.Answer}
	src := payload.Sources
	if src.Type != "" || len(src.Documents) > 0 || len(src.Web) > 0 {
		sources, err := domain.NormalizeSources(src.Type, src.Documents, src.Web)
		if err != nil {
			return nil, err
		}
		result.Sources = sources
	}
	return result, nil
}

// Summarize condenses text into the requested language.
func (c *Client) Summarize(ctx context.Context, text, language string) (string, error) {
	creds, err := c.credentials(ctx)
	if err != nil {
		return "", err
	}

	jsonBody, err := json.Marshal(summarizeRequest{Text: text, Language: language})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/summarize", bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerOpenAIKey, creds.OpenAIKey)
	req.Header.Set(headerTavilyKey, creds.TavilyKey)

	resp, err := c.send(ctx, req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", remoteError(resp)
	}

	var payload summarizePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return payload.Summary, nil
}

// ValidateKeys checks a candidate key pair with the remote service.
// Unlike the other operations it sends the given pair, not the stored
// one, so it works before any pair has been saved.
func (c *Client) ValidateKeys(ctx context.Context, creds domain.Credentials) error {
	jsonBody, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/validate_keys", bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.send(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return remoteError(resp)
	}
	return nil
}
