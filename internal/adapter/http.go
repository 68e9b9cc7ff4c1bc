package adapter

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"github.com/MKhiriev/lexsight/internal/config"
	"github.com/MKhiriev/lexsight/internal/logger"
	"github.com/MKhiriev/lexsight/internal/utils"
	"github.com/MKhiriev/lexsight/models"
	"github.com/go-resty/resty/v2"
)

// sessionCookieName must match the server's session cookie.
const sessionCookieName = "session_token"

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter builds a [ServerAdapter] for the server at
// cfg.HTTPAddress. An address without a scheme is treated as http.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	// the session cookie is managed explicitly
	client.SetCookieJar(nil)

	return &httpServerAdapter{
		client: client,
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetSessionToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) SessionToken() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Signup(ctx context.Context, req models.SignupRequest) (models.SessionUser, error) {
	return h.authenticate(ctx, "/api/auth/signup", req)
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.SessionUser, error) {
	return h.authenticate(ctx, "/api/auth/login", req)
}

// authenticate posts credentials and keeps the session cookie from the
// response.
func (h *httpServerAdapter) authenticate(ctx context.Context, path string, body any) (models.SessionUser, error) {
	var result models.UserResponse

	resp, err := h.request(ctx).
		SetBody(body).
		SetResult(&result).
		Post(path)
	if err != nil {
		return models.SessionUser{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SessionUser{}, err
	}

	token := sessionCookie(resp)
	if token == "" {
		return models.SessionUser{}, ErrNoSessionCookie
	}
	h.SetSessionToken(token)

	if result.User == nil {
		return models.SessionUser{}, fmt.Errorf("%s: empty user in response", path)
	}

	h.logger.Debug().Str("user_id", result.User.ID).Msg("session started")
	return *result.User, nil
}

func sessionCookie(resp *resty.Response) string {
	for _, c := range resp.Cookies() {
		if c.Name == sessionCookieName {
			return c.Value
		}
	}
	return ""
}

// Logout ends the server session. The local token is cleared even when the
// request fails.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	defer h.SetSessionToken("")

	resp, err := h.request(ctx).Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) CurrentUser(ctx context.Context) (*models.SessionUser, error) {
	var result models.UserResponse

	resp, err := h.request(ctx).SetResult(&result).Get("/api/auth/user")
	if err != nil {
		return nil, fmt.Errorf("current user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.User, nil
}

// ExtractText uploads data as the multipart "file" field. The part's
// content type is derived from the file extension; the server falls back
// to the extension when it is unknown.
func (h *httpServerAdapter) ExtractText(ctx context.Context, fileName string, data []byte) (models.ExtractResponse, error) {
	var result models.ExtractResponse

	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(fileName)))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	resp, err := h.request(ctx).
		SetMultipartField("file", filepath.Base(fileName), contentType, bytes.NewReader(data)).
		SetResult(&result).
		Post("/api/extract-text")
	if err != nil {
		return models.ExtractResponse{}, fmt.Errorf("extract request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ExtractResponse{}, err
	}

	return result, nil
}

func (h *httpServerAdapter) ListDocuments(ctx context.Context) ([]models.DocumentResponse, error) {
	var result []models.DocumentResponse

	resp, err := h.request(ctx).SetResult(&result).Get("/api/documents")
	if err != nil {
		return nil, fmt.Errorf("list documents request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result, nil
}

func (h *httpServerAdapter) CreateDocument(ctx context.Context, doc models.NewDocument) (string, error) {
	var result models.CreateDocumentResponse

	resp, err := h.request(ctx).
		SetBody(doc).
		SetResult(&result).
		Post("/api/documents")
	if err != nil {
		return "", fmt.Errorf("create document request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return result.ID, nil
}

func (h *httpServerAdapter) GetDocument(ctx context.Context, id string) (models.DocumentResponse, error) {
	var result models.DocumentResponse

	resp, err := h.request(ctx).
		SetPathParam("id", id).
		SetResult(&result).
		Get("/api/documents/{id}")
	if err != nil {
		return models.DocumentResponse{}, fmt.Errorf("get document request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DocumentResponse{}, err
	}

	return result, nil
}

func (h *httpServerAdapter) DeleteDocument(ctx context.Context, id string) error {
	resp, err := h.request(ctx).
		SetPathParam("id", id).
		Delete("/api/documents/{id}")
	if err != nil {
		return fmt.Errorf("delete document request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) SummarizeClause(ctx context.Context, text string) (string, error) {
	var result models.SummaryResponse

	resp, err := h.request(ctx).
		SetBody(models.AnalysisRequest{Text: text}).
		SetResult(&result).
		Post("/api/analysis/summarize")
	if err != nil {
		return "", fmt.Errorf("summarize request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return result.Summary, nil
}

func (h *httpServerAdapter) AnalyzeRisk(ctx context.Context, text string) (string, error) {
	var result models.RiskResponse

	resp, err := h.request(ctx).
		SetBody(models.AnalysisRequest{Text: text}).
		SetResult(&result).
		Post("/api/analysis/risk")
	if err != nil {
		return "", fmt.Errorf("risk request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return result.RiskSummary, nil
}

func (h *httpServerAdapter) AnalyzeDocumentRisk(ctx context.Context, id string) (string, error) {
	var result models.RiskResponse

	resp, err := h.request(ctx).
		SetPathParam("id", id).
		SetResult(&result).
		Post("/api/documents/{id}/risk")
	if err != nil {
		return "", fmt.Errorf("document risk request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return result.RiskSummary, nil
}

func (h *httpServerAdapter) ServerVersion(ctx context.Context) (models.VersionResponse, error) {
	var result models.VersionResponse

	resp, err := h.request(ctx).SetResult(&result).Get("/api/version")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return result, nil
}

// request starts a request carrying the session cookie, if any.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.SessionToken(); token != "" {
		req.SetCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	}
	return req
}
