package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"agroadvisor/internal/advisor"
	"agroadvisor/internal/auth"
	"agroadvisor/internal/entity"
	"agroadvisor/internal/llm"
	"agroadvisor/internal/repository"
)

// In-memory repository doubles. Only the methods the routes under test
// touch carry real behavior.

type memUsers struct {
	mu     sync.Mutex
	byID   map[uuid.UUID]*entity.User
	hashes map[string]string
}

func newMemUsers() *memUsers {
	return &memUsers{byID: map[uuid.UUID]*entity.User{}, hashes: map[string]string{}}
}

func (m *memUsers) Create(_ context.Context, req repository.CreateUserRequest) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.hashes[req.Mobile]; ok {
		return nil, repository.ErrDuplicateMobile
	}
	u := &entity.User{
		ID:         uuid.New(),
		Name:       req.Name,
		Mobile:     req.Mobile,
		Age:        req.Age,
		FarmerType: req.FarmerType,
		Location:   req.Location,
		Language:   req.Language,
		CreatedAt:  time.Now(),
	}
	m.byID[u.ID] = u
	m.hashes[req.Mobile] = req.PasswordHash
	return u, nil
}

func (m *memUsers) FindByMobile(_ context.Context, mobile string) (*entity.User, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Mobile == mobile {
			return u, m.hashes[mobile], nil
		}
	}
	return nil, "", repository.ErrNotFound
}

func (m *memUsers) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

type memTokens struct {
	mu      sync.Mutex
	revoked map[string]bool
}

func newMemTokens() *memTokens { return &memTokens{revoked: map[string]bool{}} }

func (m *memTokens) Revoke(_ context.Context, token string, _ time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revoked[token] = true
	return nil
}

func (m *memTokens) IsRevoked(_ context.Context, token string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.revoked[token], nil
}

type memReports struct {
	mu   sync.Mutex
	soil []*entity.SoilReport
}

func (m *memReports) CreateSoilReport(_ context.Context, userID uuid.UUID, res *advisor.SoilResult) (*entity.SoilReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec := &entity.SoilReport{
		ID:         uuid.New(),
		UserID:     userID,
		SoilReport: res.SoilReport,
		Solution:   res.Solution,
		Language:   res.Language,
		CreatedAt:  time.Now(),
	}
	m.soil = append([]*entity.SoilReport{rec}, m.soil...)
	return rec, nil
}

func (m *memReports) ListSoilReports(_ context.Context, userID uuid.UUID) ([]*entity.SoilReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.SoilReport
	for _, r := range m.soil {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memReports) CreateDiseaseAnalysis(context.Context, uuid.UUID, string, *advisor.DiseaseResult) (*entity.DiseaseAnalysis, error) {
	return &entity.DiseaseAnalysis{}, nil
}

func (m *memReports) ListDiseaseAnalyses(context.Context, uuid.UUID) ([]*entity.DiseaseAnalysis, error) {
	return nil, nil
}

func (m *memReports) CreateFertilizerPlan(context.Context, uuid.UUID, string, string, *advisor.FertilizerResult) (*entity.FertilizerPlan, error) {
	return &entity.FertilizerPlan{}, nil
}

func newTestRouter(t *testing.T, model *llm.FakeClient) (http.Handler, *memUsers, *memTokens) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := newMemUsers()
	tokens := newMemTokens()
	issuer := auth.NewIssuer("test-secret", time.Hour)
	adv := advisor.New(advisor.NewGateway(model, zap.NewNop()), advisor.NewNormalizer(nil), zap.NewNop())

	h := New(Deps{
		Advisor: adv,
		Users:   users,
		Tokens:  tokens,
		Reports: &memReports{},
		Issuer:  issuer,
		Logger:  zap.NewNop(),
	})

	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	guard := auth.Middleware(issuer, tokens)
	r.POST("/auth/logout", guard, h.Logout)
	r.GET("/auth/me", guard, h.Me)
	r.POST("/soil/analyze", guard, h.AnalyzeSoil)
	r.GET("/soil", guard, h.ListSoilReports)
	return r, users, tokens
}

func postJSON(t *testing.T, r http.Handler, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerAndLogin(t *testing.T, r http.Handler) string {
	t.Helper()
	w := postJSON(t, r, "/auth/register", "", gin.H{
		"name":     "Asha",
		"mobile":   "+919876543210",
		"password": "secret123",
		"language": "hi",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRegisterLoginAndMe(t *testing.T) {
	r, _, _ := newTestRouter(t, &llm.FakeClient{})

	token := registerAndLogin(t, r)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "+919876543210")

	// Fresh login with the same credentials.
	w = postJSON(t, r, "/auth/login", "", gin.H{"mobile": "+919876543210", "password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	r, _, _ := newTestRouter(t, &llm.FakeClient{})
	registerAndLogin(t, r)

	w := postJSON(t, r, "/auth/login", "", gin.H{"mobile": "+919876543210", "password": "wrong"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegister_DuplicateMobile(t *testing.T) {
	r, _, _ := newTestRouter(t, &llm.FakeClient{})
	registerAndLogin(t, r)

	w := postJSON(t, r, "/auth/register", "", gin.H{
		"name":     "Asha Again",
		"mobile":   "+919876543210",
		"password": "secret123",
	})
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestLogout_RevokesToken(t *testing.T) {
	r, _, _ := newTestRouter(t, &llm.FakeClient{})
	token := registerAndLogin(t, r)

	w := postJSON(t, r, "/auth/logout", token, gin.H{})
	require.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	require.Equal(t, http.StatusUnauthorized, w2.Code)
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	r, _, _ := newTestRouter(t, &llm.FakeClient{})

	req := httptest.NewRequest(http.MethodGet, "/soil", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func multipartUpload(t *testing.T, field, filename, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestAnalyzeSoil_ImageUpload(t *testing.T) {
	model := &llm.FakeClient{Replies: []llm.FakeReply{{
		Text: `{"soilReport":{"soilType":"loamy","isSoilReport":true},"solution":{"recommendedCrops":["wheat"]}}`,
	}}}
	r, _, _ := newTestRouter(t, model)
	token := registerAndLogin(t, r)

	body, contentType := multipartUpload(t, "file", "report.png", "image/png", []byte("fake-png"))
	req := httptest.NewRequest(http.MethodPost, "/soil/analyze", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "loamy")
	require.Len(t, model.Calls, 1)
	// The registered profile language flows into the instruction.
	require.Contains(t, model.Calls[0], "(hi)")

	// The stored report is listed back.
	req = httptest.NewRequest(http.MethodGet, "/soil", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "wheat")
}

func TestAnalyzeSoil_RejectsArchiveWithoutModelCall(t *testing.T) {
	model := &llm.FakeClient{}
	r, _, _ := newTestRouter(t, model)
	token := registerAndLogin(t, r)

	body, contentType := multipartUpload(t, "file", "report.zip", "application/zip", []byte("PK"))
	req := httptest.NewRequest(http.MethodPost, "/soil/analyze", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.True(t, strings.Contains(w.Body.String(), "unsupported_input"))
	require.Empty(t, model.Calls)
}

func TestAnalyzeSoil_ModelGarbageIsBadGateway(t *testing.T) {
	model := &llm.FakeClient{Replies: []llm.FakeReply{{Text: "I could not read the report, sorry!"}}}
	r, _, _ := newTestRouter(t, model)
	token := registerAndLogin(t, r)

	body, contentType := multipartUpload(t, "file", "report.png", "image/png", []byte("fake-png"))
	req := httptest.NewRequest(http.MethodPost, "/soil/analyze", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadGateway, w.Code)
	require.Contains(t, w.Body.String(), "model_output_unusable")
}
