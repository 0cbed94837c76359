package handlers

import (
	"context"
	"net/http"

	"github.com/DrOldGuy/model-railroad-scaler/internal/models"
	"github.com/DrOldGuy/model-railroad-scaler/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(_ context.Context, username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(_ context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockScaler struct {
	resp    models.ScaleData
	err     error
	lastReq models.ScaleData
	calls   int
}

func (m *mockScaler) SupplyMissingFields(_ context.Context, data models.ScaleData) (models.ScaleData, error) {
	m.calls++
	m.lastReq = data
	return m.resp, m.err
}

type mockCatalog struct {
	scales     []models.Scale
	listErr    error
	added      models.Scale
	addErr     error
	lastName   string
	lastFactor decimal.Decimal
}

func (m *mockCatalog) Resolve(_ context.Context, name string) (models.Scale, error) {
	for _, s := range m.scales {
		if s.Name == name {
			return s, nil
		}
	}
	return models.Scale{}, &service.ValidationError{Message: name + " is not a valid Scale name."}
}
func (m *mockCatalog) ListScales(context.Context) ([]models.Scale, error) {
	return m.scales, m.listErr
}
func (m *mockCatalog) AddScale(_ context.Context, name string, factor decimal.Decimal) (models.Scale, error) {
	m.lastName = name
	m.lastFactor = factor
	return m.added, m.addErr
}
func (m *mockCatalog) SeedScales(context.Context) error { return nil }

type mockHistory struct {
	recorded  int
	recordErr error

	resp        []models.Conversion
	err         error
	lastFilter  service.ConversionFilter
	lastLimit   int
	recentCalls int
	// recentFn, when set, answers RecentConversions by call number
	recentFn func(call int) ([]models.Conversion, error)
}

func (m *mockHistory) Record(_ context.Context, _, _ models.ScaleData) (models.Conversion, error) {
	m.recorded++
	return models.Conversion{}, m.recordErr
}
func (m *mockHistory) ListConversions(_ context.Context, f service.ConversionFilter) ([]models.Conversion, error) {
	m.lastFilter = f
	return m.resp, m.err
}
func (m *mockHistory) RecentConversions(_ context.Context, limit int) ([]models.Conversion, error) {
	m.recentCalls++
	m.lastLimit = limit
	if m.recentFn != nil {
		return m.recentFn(m.recentCalls)
	}
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	return newTestRouterWith(s, Options{})
}

func newTestRouterWith(s *service.Service, opts Options) *gin.Engine {
	h := NewHandler(s, nil, opts)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
