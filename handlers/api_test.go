package handlers_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	accountRepo "ecoscan/database/repository/account"
	"ecoscan/handlers"
	"ecoscan/models"
	"ecoscan/routes"
	"ecoscan/services/account"
	"ecoscan/services/classifier"
	"ecoscan/services/ledger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// --- in-memory doubles ---

type memAccountRepo struct {
	mu      sync.Mutex
	byEmail map[string]*models.Account
	byID    map[string]*models.Account
}

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{byEmail: map[string]*models.Account{}, byID: map[string]*models.Account{}}
}

func (r *memAccountRepo) Create(a *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[a.Email]; ok {
		return accountRepo.ErrDuplicateEmail
	}
	cp := *a
	r.byEmail[cp.Email] = &cp
	r.byID[cp.ID] = &cp
	return nil
}

func (r *memAccountRepo) GetByEmail(email string) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.byEmail[email]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (r *memAccountRepo) GetByID(id string) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.byID[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

type memHistoryRepo struct {
	mu      sync.Mutex
	records []models.HistoryRecord
}

func (r *memHistoryRepo) Create(rec *models.HistoryRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, *rec)
	return nil
}

func (r *memHistoryRepo) ListByAccount(accountID string) ([]models.HistoryRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.HistoryRecord
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].AccountID == accountID {
			out = append(out, r.records[i])
		}
	}
	return out, nil
}

func (r *memHistoryRepo) ListReports() ([]models.HistoryRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.HistoryRecord
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].Kind == models.KindReport {
			out = append(out, r.records[i])
		}
	}
	return out, nil
}

// stubClassifier returns a canned result or error.
type stubClassifier struct {
	result *models.ClassificationResult
	err    error
}

func (s *stubClassifier) Classify(ctx context.Context, image []byte, format string) (*models.ClassificationResult, error) {
	return s.result, s.err
}

// --- router assembly ---

func newTestRouter(cls classifier.ClassifierService) *gin.Engine {
	accountService := &account.DefaultAccountService{Repo: newMemAccountRepo()}
	ledgerService := &ledger.DefaultLedgerService{Repo: &memHistoryRepo{}}

	authHandler := handlers.NewAuthHandler(accountService)
	historyHandler := handlers.NewHistoryHandler(ledgerService)
	classifyHandler := handlers.NewClassifyHandler(cls)
	adminHandler := handlers.NewAdminHandler(ledgerService)

	router := gin.New()
	routes.RegisterRoutes(router, &handlers.HandlerBundle{
		SignupHandler:         authHandler.SignupHandler,
		LoginHandler:          authHandler.LoginHandler,
		GetHistoryHandler:     historyHandler.GetHistoryHandler,
		CreateHistoryHandler:  historyHandler.CreateHistoryHandler,
		ClassifyWasteHandler:  classifyHandler.ClassifyWasteHandler,
		ListReportsHandler:    adminHandler.ListReportsHandler,
		ListCategoriesHandler: handlers.ListCategoriesHandler,
	})
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func signup(t *testing.T, router *gin.Engine, email, secret string) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/auth/signup", "", gin.H{"email": email, "secret": secret})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

// --- tests ---

func TestSignupAndDuplicate(t *testing.T) {
	router := newTestRouter(&stubClassifier{})

	signup(t, router, "a@x.com", "p")

	rec := doJSON(t, router, http.MethodPost, "/api/auth/signup", "", gin.H{"email": "a@x.com", "secret": "q"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/auth/signup", "", gin.H{"email": "", "secret": "q"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginFailuresAreUniform(t *testing.T) {
	router := newTestRouter(&stubClassifier{})
	signup(t, router, "a@x.com", "right")

	wrongSecret := doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{"email": "a@x.com", "secret": "wrong"})
	unknownEmail := doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{"email": "nobody@x.com", "secret": "right"})

	assert.Equal(t, http.StatusUnauthorized, wrongSecret.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongSecret.Body.String(), unknownEmail.Body.String())
}

func TestHistoryRequiresToken(t *testing.T) {
	router := newTestRouter(&stubClassifier{})

	rec := doJSON(t, router, http.MethodGet, "/api/history", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/history", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateScanRecord(t *testing.T) {
	router := newTestRouter(&stubClassifier{})
	token := signup(t, router, "a@x.com", "p")

	rec := doJSON(t, router, http.MethodPost, "/api/history", token, gin.H{"kind": "scan", "category": "organic"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created models.HistoryRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, models.KindScan, created.Kind)
	assert.Equal(t, models.StatusCompleted, created.Status)
	assert.Empty(t, created.TicketNumber)
}

func TestCreateReportRecord(t *testing.T) {
	router := newTestRouter(&stubClassifier{})
	token := signup(t, router, "a@x.com", "p")

	// Coordinates alone satisfy the location requirement.
	rec := doJSON(t, router, http.MethodPost, "/api/history", token, gin.H{
		"kind":     "report",
		"category": "hazardous",
		"location": gin.H{"lat": 52.370216, "lng": 4.895168},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created models.HistoryRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, models.StatusInProgress, created.Status)
	assert.NotEmpty(t, created.TicketNumber)
	assert.Equal(t, "52.370216, 4.895168", created.Address)

	// No location signal at all is rejected.
	rec = doJSON(t, router, http.MethodPost, "/api/history", token, gin.H{"kind": "report", "category": "hazardous"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Category outside the taxonomy is caller error, not 404.
	rec = doJSON(t, router, http.MethodPost, "/api/history", token, gin.H{"kind": "report", "category": "glass", "address": "12 Elm Street"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/history", token, gin.H{"kind": "audit", "category": "organic"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHistoryIsolationBetweenAccounts(t *testing.T) {
	router := newTestRouter(&stubClassifier{})
	tokenA := signup(t, router, "a@x.com", "p")
	tokenB := signup(t, router, "b@x.com", "p")

	rec := doJSON(t, router, http.MethodPost, "/api/history", tokenA, gin.H{"kind": "scan", "category": "organic"})
	require.Equal(t, http.StatusCreated, rec.Code)

	listB := doJSON(t, router, http.MethodGet, "/api/history", tokenB, nil)
	require.Equal(t, http.StatusOK, listB.Code)
	var recordsB []models.HistoryRecord
	require.NoError(t, json.Unmarshal(listB.Body.Bytes(), &recordsB))
	assert.Empty(t, recordsB, "account B must not see account A's records")

	listA := doJSON(t, router, http.MethodGet, "/api/history", tokenA, nil)
	require.Equal(t, http.StatusOK, listA.Code)
	var recordsA []models.HistoryRecord
	require.NoError(t, json.Unmarshal(listA.Body.Bytes(), &recordsA))
	assert.Len(t, recordsA, 1)
}

// TestAdminReportsNoRoleCheck documents the known authorization gap: the
// admin view requires a valid token but any registered account qualifies.
func TestAdminReportsNoRoleCheck(t *testing.T) {
	router := newTestRouter(&stubClassifier{})
	tokenA := signup(t, router, "a@x.com", "p")
	tokenB := signup(t, router, "b@x.com", "p")

	rec := doJSON(t, router, http.MethodPost, "/api/history", tokenA, gin.H{"kind": "report", "category": "medical", "address": "12 Elm Street"})
	require.Equal(t, http.StatusCreated, rec.Code)

	noToken := doJSON(t, router, http.MethodGet, "/api/admin/reports", "", nil)
	assert.Equal(t, http.StatusUnauthorized, noToken.Code)

	asB := doJSON(t, router, http.MethodGet, "/api/admin/reports", tokenB, nil)
	require.Equal(t, http.StatusOK, asB.Code)
	var reports []models.HistoryRecord
	require.NoError(t, json.Unmarshal(asB.Body.Bytes(), &reports))
	assert.Len(t, reports, 1, "any authenticated account can read all reports")
}

func TestClassifyEndpoint(t *testing.T) {
	stub := &stubClassifier{result: &models.ClassificationResult{
		Category:      "hazardous",
		Confidence:    92,
		ItemsDetected: []string{"paint can"},
		Reasoning:     "solvent container",
	}}
	router := newTestRouter(stub)
	token := signup(t, router, "a@x.com", "p")

	image := base64.StdEncoding.EncodeToString([]byte("fake-image-bytes"))

	rec := doJSON(t, router, http.MethodPost, "/api/classify", "", gin.H{"image": image})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/classify", token, gin.H{"image": "data:image/png;base64," + image})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var result models.ClassificationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "hazardous", result.Category)
	assert.Equal(t, 92, result.Confidence)

	rec = doJSON(t, router, http.MethodPost, "/api/classify", token, gin.H{"image": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestClassifyUpstreamFailureStatuses(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{classifier.ErrRateLimited, http.StatusTooManyRequests},
		{classifier.ErrQuotaExhausted, http.StatusPaymentRequired},
		{classifier.ErrUnparseable, http.StatusInternalServerError},
		{classifier.ErrInvalidCategory, http.StatusInternalServerError},
		{classifier.ErrUpstreamUnavailable, http.StatusInternalServerError},
	}

	image := base64.StdEncoding.EncodeToString([]byte("fake-image-bytes"))
	for _, tc := range cases {
		router := newTestRouter(&stubClassifier{err: tc.err})
		token := signup(t, router, "a@x.com", "p")
		rec := doJSON(t, router, http.MethodPost, "/api/classify", token, gin.H{"image": image})
		assert.Equal(t, tc.want, rec.Code, "error %v", tc.err)
	}
}

func TestCategoriesEndpointIsPublic(t *testing.T) {
	router := newTestRouter(&stubClassifier{})

	rec := doJSON(t, router, http.MethodGet, "/api/categories", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var categories []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
	assert.Len(t, categories, 7)
}

func TestHealthRoute(t *testing.T) {
	router := newTestRouter(&stubClassifier{})

	rec := doJSON(t, router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
