package handlers

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/learnpath/site/catalog"
	"github.com/learnpath/site/config"
	"github.com/learnpath/site/db"
	"github.com/learnpath/site/faq"
	"github.com/learnpath/site/pricing"
)

// newCtx returns a fiber context for uri with optional request cookies.
func newCtx(t *testing.T, uri string, cookies map[string]string) *fiber.Ctx {
	t.Helper()
	app := fiber.New()
	c := app.AcquireCtx(&fasthttp.RequestCtx{})
	t.Cleanup(func() { app.ReleaseCtx(c) })
	c.Request().SetRequestURI(uri)
	for k, v := range cookies {
		c.Request().Header.SetCookie(k, v)
	}
	return c
}

func TestBillingSelection(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		cookies map[string]string
		want    pricing.BillingPeriod
	}{
		{"default", "/pricing", nil, pricing.Monthly},
		{"query", "/pricing?billing=annual", nil, pricing.Annual},
		{"cookie", "/pricing", map[string]string{config.BillingCookie: "annual"}, pricing.Annual},
		{"query beats cookie", "/pricing?billing=monthly", map[string]string{config.BillingCookie: "annual"}, pricing.Monthly},
		{"bad query falls back to cookie", "/pricing?billing=weekly", map[string]string{config.BillingCookie: "annual"}, pricing.Annual},
		{"bad cookie", "/pricing", map[string]string{config.BillingCookie: "yearly"}, pricing.Monthly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCtx(t, tt.uri, tt.cookies)
			assert.Equal(t, tt.want, billingSelection(c).Active())
		})
	}
}

func TestFaqState(t *testing.T) {
	entries := faq.Entries()
	c := newCtx(t, "/pricing?open=billing,nope,free-plan", nil)

	d := faqState(c, entries)
	assert.Equal(t, []string{"free-plan", "billing"}, d.Expanded())
}

func TestCategorySelection(t *testing.T) {
	list := catalog.Builtin()

	tests := []struct {
		uri  string
		want string
	}{
		{"/courses", catalog.AllCategories},
		{"/courses?category=Design", "Design"},
		{"/courses?category=Cooking", catalog.AllCategories},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			assert.Equal(t, tt.want, categorySelection(newCtx(t, tt.uri, nil), list).Active())
		})
	}
}

func TestAuthMode(t *testing.T) {
	assert.Equal(t, "signin", authMode(newCtx(t, "/auth", nil)))
	assert.Equal(t, "signup", authMode(newCtx(t, "/auth?mode=signup", nil)))
	assert.Equal(t, "signin", authMode(newCtx(t, "/auth?mode=admin", nil)))

	c := newCtx(t, "/api/auth/validate", nil)
	c.Request().Header.SetMethod(fiber.MethodPost)
	c.Request().Header.SetContentType(fiber.MIMEApplicationForm)
	c.Request().SetBodyString("mode=signup&email=ada%40example.com")
	assert.Equal(t, "signup", authMode(c))
}

func TestValidationMessages(t *testing.T) {
	tests := []struct {
		name string
		form any
		want []string
	}{
		{
			name: "empty sign in",
			form: &signInForm{},
			want: []string{"Email address is required", "Password is required"},
		},
		{
			name: "bad email and short password",
			form: &signInForm{Email: "nope", Password: "short"},
			want: []string{"Email address must be a valid email", "Password must be at least 8 characters"},
		},
		{
			name: "mismatched confirmation",
			form: &signUpForm{Name: "Ada", Email: "ada@example.com", Password: "longenough", Confirm: "different"},
			want: []string{"Passwords do not match"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.form)
			require.Error(t, err)
			assert.Equal(t, tt.want, validationMessages(err))
		})
	}
}

func TestValidationMessagesPlainError(t *testing.T) {
	assert.Equal(t, []string{"boom"}, validationMessages(errors.New("boom")))
}

func TestValidFormsPass(t *testing.T) {
	assert.NoError(t, validate.Struct(&signInForm{Email: "ada@example.com", Password: "longenough"}))
	assert.NoError(t, validate.Struct(&signUpForm{Name: "Ada", Email: "ada@example.com", Password: "longenough", Confirm: "longenough"}))
}

func TestCacheStats(t *testing.T) {
	defer Init(Options{Catalog: courses, Blog: posts})

	Init(Options{Catalog: catalog.NewStatic(nil)})
	assert.Empty(t, cacheStats())

	cached, err := catalog.NewCached(catalog.NewStatic(nil), config.ContentCacheTTL)
	require.NoError(t, err)
	defer cached.Close()
	Init(Options{Catalog: cached})

	stats := cacheStats()
	require.Len(t, stats, 2)
	assert.Equal(t, "catalog-list", stats[0].Name)
}

func TestHealthDatabase(t *testing.T) {
	tests := []struct {
		name    string
		pingErr error
		status  int
		want    string
	}{
		{"up", nil, fiber.StatusOK, `"database":"up"`},
		{"down", errors.New("disk full"), fiber.StatusServiceUnavailable, `"database":"down"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
			require.NoError(t, err)
			defer mockDB.Close()
			db.SetForTesting(mockDB)
			defer db.SetForTesting(nil)

			mock.ExpectPing().WillReturnError(tt.pingErr)

			app := fiber.New()
			app.Get("/health", HandleHealth)
			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil))
			require.NoError(t, err)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Contains(t, string(body), tt.want)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
