package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/deppfellow/lightbnb/internal/config"
	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/deppfellow/lightbnb/internal/middleware"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const sessionUserID int64 = 3

type stubAuth struct{}

func (stubAuth) Authenticate(token string) (int64, error) {
	if token == "valid" {
		return sessionUserID, nil
	}
	return 0, errs.NewUnauthorizedError("Unauthorized", false)
}

type fakeUserService struct {
	registered []string
}

func (f *fakeUserService) Register(_ context.Context, name, email, _ string) (*model.User, error) {
	f.registered = append(f.registered, email)
	return &model.User{ID: 10, Name: name, Email: email}, nil
}

func (f *fakeUserService) Login(_ context.Context, email, password string) (*model.User, *service.Session, error) {
	if password != "password1" {
		return nil, nil, errs.NewUnauthorizedError("Invalid email or password", true)
	}
	return &model.User{ID: 10, Email: email}, &service.Session{Token: "tok", ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (f *fakeUserService) Me(_ context.Context, userID int64) (*model.User, error) {
	return &model.User{ID: userID, Name: "Me", Email: "me@example.com", Password: "hash"}, nil
}

type fakeSessions struct{}

func (fakeSessions) IssueSession(int64) (*service.Session, error) {
	return &service.Session{Token: "new-token", ExpiresAt: time.Now().Add(time.Hour)}, nil
}

type fakePropertyService struct {
	filter  model.PropertyFilter
	limit   int
	ownerID int64
	created model.NewProperty
}

func (f *fakePropertyService) List(_ context.Context, filter model.PropertyFilter, limit int) ([]model.RatedProperty, error) {
	f.filter, f.limit = filter, limit
	return []model.RatedProperty{}, nil
}

func (f *fakePropertyService) Create(_ context.Context, ownerID int64, p model.NewProperty) (*model.Property, error) {
	f.ownerID, f.created = ownerID, p
	return &model.Property{ID: 1, OwnerID: ownerID, Title: p.Title, CostPerNight: model.ToCents(p.CostPerNight)}, nil
}

type fakeReservationService struct {
	result []model.GuestReservation
	limit  int
}

func (f *fakeReservationService) ListForGuest(_ context.Context, _ int64, limit int) ([]model.GuestReservation, error) {
	f.limit = limit
	return f.result, nil
}

func testServer() *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{Primary: config.Primary{Env: "test"}},
		Logger: &logger,
	}
}

type testApp struct {
	e            *echo.Echo
	users        *fakeUserService
	properties   *fakePropertyService
	reservations *fakeReservationService
}

func newTestApp() *testApp {
	s := testServer()
	app := &testApp{
		e:            echo.New(),
		users:        &fakeUserService{},
		properties:   &fakePropertyService{},
		reservations: &fakeReservationService{},
	}
	app.e.HTTPErrorHandler = middleware.NewGlobalMiddlewares(s).GlobalErrorHandler
	auth := middleware.NewAuthMiddleware(s, stubAuth{}).RequireAuth

	uh := NewUserHandler(s, app.users, fakeSessions{})
	ph := NewPropertyHandler(s, app.properties)
	rh := NewReservationHandler(s, app.reservations)

	app.e.POST("/users", Handle(uh.Handler, uh.SignUp, http.StatusCreated, New[SignUpRequest]()))
	app.e.POST("/users/login", Handle(uh.Handler, uh.Login, http.StatusOK, New[LoginRequest]()))
	app.e.POST("/users/logout", HandleNoContent(uh.Handler, uh.Logout, http.StatusNoContent, New[EmptyRequest]()))
	app.e.GET("/users/me", Handle(uh.Handler, uh.Me, http.StatusOK, New[EmptyRequest]()), auth)
	app.e.GET("/api/properties", Handle(ph.Handler, ph.ListProperties, http.StatusOK, New[ListPropertiesRequest]()))
	app.e.POST("/api/properties", Handle(ph.Handler, ph.CreateProperty, http.StatusCreated, New[CreatePropertyRequest]()), auth)
	app.e.GET("/api/reservations", Handle(rh.Handler, rh.ListReservations, http.StatusOK, New[ListReservationsRequest]()), auth)
	return app
}

func (a *testApp) do(method, target, body string, authed bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if authed {
		req.Header.Set(echo.HeaderAuthorization, "Bearer valid")
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			return c
		}
	}
	return nil
}

func TestSignUpSetsSessionCookie(t *testing.T) {
	app := newTestApp()
	rec := app.do(http.MethodPost, "/users", `{"name":"Devin","email":"devin@example.com","password":"password1"}`, false)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if c := sessionCookie(rec); c == nil || c.Value != "new-token" || !c.HttpOnly {
		t.Fatalf("session cookie = %+v", c)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("password leaked: %s", rec.Body.String())
	}
}

func TestSignUpValidation(t *testing.T) {
	app := newTestApp()
	rec := app.do(http.MethodPost, "/users", `{"name":"","email":"devin","password":"x"}`, false)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if len(app.users.registered) != 0 {
		t.Fatal("service must not be called on invalid input")
	}
}

func TestLoginAndLogout(t *testing.T) {
	app := newTestApp()

	rec := app.do(http.MethodPost, "/users/login", `{"email":"a@example.com","password":"password1"}`, false)
	if rec.Code != http.StatusOK || sessionCookie(rec).Value != "tok" {
		t.Fatalf("login: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.do(http.MethodPost, "/users/login", `{"email":"a@example.com","password":"nope"}`, false)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad login status = %d", rec.Code)
	}

	rec = app.do(http.MethodPost, "/users/logout", "", false)
	if c := sessionCookie(rec); rec.Code != http.StatusNoContent || c == nil || c.MaxAge >= 0 || c.Value != "" {
		t.Fatalf("logout: %d %+v", rec.Code, c)
	}
}

func TestMeRequiresSession(t *testing.T) {
	app := newTestApp()

	if rec := app.do(http.MethodGet, "/users/me", "", false); rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}

	rec := app.do(http.MethodGet, "/users/me", "", true)
	var user model.User
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil || user.ID != sessionUserID {
		t.Fatalf("me: %s (%v)", rec.Body.String(), err)
	}
}

func TestListPropertiesQuery(t *testing.T) {
	app := newTestApp()
	rec := app.do(http.MethodGet,
		"/api/properties?city=Vancouver&owner_id=7&minimum_price_per_night=100&maximum_price_per_night=250.50&minimum_rating=4&limit=3", "", false)

	if rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("list: %d %s", rec.Code, rec.Body.String())
	}

	f := app.properties.filter
	if f.City != "Vancouver" || *f.OwnerID != 7 || *f.MinimumRating != 4 || app.properties.limit != 3 {
		t.Fatalf("filter = %+v limit %d", f, app.properties.limit)
	}
	if f.MinimumPricePerNight.String() != "100" || f.MaximumPricePerNight.String() != "250.5" {
		t.Fatalf("prices = %s %s", f.MinimumPricePerNight, f.MaximumPricePerNight)
	}
}

func TestListPropertiesNoFilters(t *testing.T) {
	app := newTestApp()
	if rec := app.do(http.MethodGet, "/api/properties", "", false); rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	f := app.properties.filter
	if f.City != "" || f.OwnerID != nil || f.MinimumPricePerNight != nil || f.MaximumPricePerNight != nil || f.MinimumRating != nil {
		t.Fatalf("expected empty filter, got %+v", f)
	}
	if app.properties.limit != 0 {
		t.Fatalf("limit = %d, the repository applies the default", app.properties.limit)
	}
}

func TestListPropertiesRejectsBadQuery(t *testing.T) {
	for _, query := range []string{
		"minimum_rating=6",
		"minimum_rating=abc",
		"owner_id=x",
		"owner_id=99999999999999999999",
		"minimum_rating=1" + strings.Repeat("0", 400),
		"maximum_price_per_night=1e17",
		"maximum_price_per_night=1E10",
		"minimum_price_per_night=21474836.48",
		"minimum_price_per_night=-5",
		"minimum_price_per_night=300&maximum_price_per_night=200",
		"limit=1000",
	} {
		app := newTestApp()
		if rec := app.do(http.MethodGet, "/api/properties?"+query, "", false); rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d", query, rec.Code)
		}
	}
}

const validProperty = `{
	"owner_id": 999,
	"title": "Cozy loft",
	"thumbnail_photo_url": "https://example.com/t.jpg",
	"cover_photo_url": "https://example.com/c.jpg",
	"cost_per_night": "150.25",
	"parking_spaces": 1,
	"number_of_bathrooms": 1,
	"number_of_bedrooms": 2,
	"country": "Canada",
	"street": "1 Main St",
	"city": "Vancouver",
	"province": "BC",
	"post_code": "V5K 0A1"
}`

func TestCreateProperty(t *testing.T) {
	app := newTestApp()

	if rec := app.do(http.MethodPost, "/api/properties", validProperty, false); rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous create status = %d", rec.Code)
	}

	rec := app.do(http.MethodPost, "/api/properties", validProperty, true)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if app.properties.ownerID != sessionUserID {
		t.Fatalf("owner = %d, want the session user", app.properties.ownerID)
	}

	var created model.Property
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil || created.CostPerNight != 15025 {
		t.Fatalf("created = %+v (%v)", created, err)
	}
}

func TestCreatePropertyRejectsBadPrice(t *testing.T) {
	for _, price := range []string{`0`, `-10`, `"12.345"`, `"100000000000000000"`, `1e17`, `"1E10"`, `21474836.48`} {
		app := newTestApp()
		body := strings.Replace(validProperty, `"150.25"`, price, 1)
		if rec := app.do(http.MethodPost, "/api/properties", body, true); rec.Code != http.StatusBadRequest {
			t.Errorf("price %s: status = %d", price, rec.Code)
		}
	}
}

func TestListReservations(t *testing.T) {
	app := newTestApp()

	rec := app.do(http.MethodGet, "/api/reservations?limit=5", "", true)
	if rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != "null" {
		t.Fatalf("no stays: %d %q", rec.Code, rec.Body.String())
	}
	if app.reservations.limit != 5 {
		t.Fatalf("limit = %d", app.reservations.limit)
	}

	app.reservations.result = []model.GuestReservation{{Reservation: model.Reservation{ID: 1, GuestID: sessionUserID}}}
	rec = app.do(http.MethodGet, "/api/reservations", "", true)
	var got []model.GuestReservation
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil || len(got) != 1 {
		t.Fatalf("reservations: %s (%v)", rec.Body.String(), err)
	}

	// Reservation columns sit at the top level; the property is nested.
	var raw []map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, key := range []string{"id", "start_date", "end_date", "property_id", "guest_id", "property", "average_rating"} {
		if _, ok := raw[0][key]; !ok {
			t.Errorf("reservation JSON missing %q: %s", key, rec.Body.String())
		}
	}
}

func TestHealth(t *testing.T) {
	s := testServer()

	tests := []struct {
		name   string
		checks []dependencyCheck
		status int
	}{
		{"all up", []dependencyCheck{
			{name: "database", ping: func(context.Context) error { return nil }, critical: true},
			{name: "redis", ping: func(context.Context) error { return nil }},
		}, http.StatusOK},
		{"redis down", []dependencyCheck{
			{name: "database", ping: func(context.Context) error { return nil }, critical: true},
			{name: "redis", ping: func(context.Context) error { return errors.New("refused") }},
		}, http.StatusOK},
		{"database down", []dependencyCheck{
			{name: "database", ping: func(context.Context) error { return errors.New("refused") }, critical: true},
		}, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &HealthHandler{Handler: NewHandler(s), checks: tt.checks, timeout: time.Second}

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/status", nil), rec)
			if err := h.CheckHealth(c); err != nil {
				t.Fatalf("check: %v", err)
			}

			var body healthResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if rec.Code != tt.status || len(body.Checks) != len(tt.checks) {
				t.Fatalf("got %d %+v", rec.Code, body)
			}
		})
	}
}

func TestOpenAPISpecIsValidJSON(t *testing.T) {
	var doc map[string]any
	if err := json.Unmarshal(openAPISpec, &doc); err != nil {
		t.Fatalf("openapi.json: %v", err)
	}
	paths, _ := doc["paths"].(map[string]any)
	for _, p := range []string{"/users", "/users/login", "/api/properties", "/api/reservations"} {
		if _, ok := paths[p]; !ok {
			t.Errorf("missing path %s", p)
		}
	}
}
