package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/lexsight/internal/config"
	"github.com/MKhiriev/lexsight/internal/logger"
	"github.com/MKhiriev/lexsight/internal/service"
	"github.com/MKhiriev/lexsight/models"
	"github.com/stretchr/testify/require"
)

type fakeAuthService struct {
	createUserFn    func(ctx context.Context, email, password, name string) (models.User, error)
	authenticateFn  func(ctx context.Context, email, password string) (models.User, error)
	createSessionFn func(ctx context.Context, userID string) (models.Session, string, error)
	getSessionFn    func(ctx context.Context, token string) (*models.SessionUser, error)
	deleteSessionFn func(ctx context.Context, token string) error
}

func (f *fakeAuthService) CreateUserWithPassword(ctx context.Context, email, password, name string) (models.User, error) {
	return f.createUserFn(ctx, email, password, name)
}

func (f *fakeAuthService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	return f.authenticateFn(ctx, email, password)
}

func (f *fakeAuthService) CreateSession(ctx context.Context, userID string) (models.Session, string, error) {
	if f.createSessionFn == nil {
		return models.Session{UserID: userID, ExpiresAt: time.Now().Add(config.DefaultSessionDuration)}, "raw-token", nil
	}
	return f.createSessionFn(ctx, userID)
}

func (f *fakeAuthService) GetSession(ctx context.Context, token string) (*models.SessionUser, error) {
	if f.getSessionFn == nil {
		return nil, nil
	}
	return f.getSessionFn(ctx, token)
}

func (f *fakeAuthService) DeleteSession(ctx context.Context, token string) error {
	if f.deleteSessionFn == nil {
		return nil
	}
	return f.deleteSessionFn(ctx, token)
}

func (f *fakeAuthService) PurgeExpiredSessions(context.Context) (int64, error) {
	return 0, nil
}

type fakeDocumentService struct {
	listFn   func(ctx context.Context) ([]models.Document, error)
	createFn func(ctx context.Context, doc models.NewDocument) (string, error)
	getFn    func(ctx context.Context, id string) (models.Document, error)
	deleteFn func(ctx context.Context, id string) error
}

func (f *fakeDocumentService) List(ctx context.Context) ([]models.Document, error) {
	return f.listFn(ctx)
}

func (f *fakeDocumentService) Create(ctx context.Context, doc models.NewDocument) (string, error) {
	return f.createFn(ctx, doc)
}

func (f *fakeDocumentService) Get(ctx context.Context, id string) (models.Document, error) {
	return f.getFn(ctx, id)
}

func (f *fakeDocumentService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

type fakeAnalysisService struct {
	summarizeFn func(ctx context.Context, text string) (string, error)
	riskFn      func(ctx context.Context, text string) (string, error)
}

func (f *fakeAnalysisService) SummarizeClause(ctx context.Context, text string) (string, error) {
	return f.summarizeFn(ctx, text)
}

func (f *fakeAnalysisService) AnalyzeContractRisk(ctx context.Context, text string) (string, error) {
	return f.riskFn(ctx, text)
}

func (f *fakeAnalysisService) Enabled() bool { return true }

type fakeExtractionService struct {
	extractFn func(ctx context.Context, data []byte, mimeType, fileName string) (models.Extraction, error)
}

func (f *fakeExtractionService) Extract(ctx context.Context, data []byte, mimeType, fileName string) (models.Extraction, error) {
	return f.extractFn(ctx, data, mimeType, fileName)
}

type fakeAppInfoService struct {
	version string
	info    models.AppBuildInfo
}

func (f *fakeAppInfoService) GetAppVersion(context.Context) string { return f.version }

func (f *fakeAppInfoService) GetBuildInfo(context.Context) models.AppBuildInfo { return f.info }

var testSessionUser = models.SessionUser{ID: "user-1", Email: "jane@example.com", Name: "Jane"}

// sessionFor resolves exactly one token to testSessionUser.
func sessionFor(token string) func(context.Context, string) (*models.SessionUser, error) {
	return func(_ context.Context, got string) (*models.SessionUser, error) {
		if got != token {
			return nil, nil
		}
		u := testSessionUser
		return &u, nil
	}
}

func newTestHandler(services *service.Services) *Handler {
	if services.AuthService == nil {
		services.AuthService = &fakeAuthService{}
	}
	return NewHandler(services, config.StructuredConfig{}, logger.Nop())
}

// serve runs req through the full router.
func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init(0).ServeHTTP(rec, req)
	return rec
}

func withSessionCookie(req *http.Request, token string) *http.Request {
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	return req
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}
