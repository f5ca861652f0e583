// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/medtrack/medtrack/internal/logger"
	"github.com/medtrack/medtrack/internal/render"
	"github.com/medtrack/medtrack/internal/service"
	"github.com/medtrack/medtrack/internal/session"
	"github.com/medtrack/medtrack/models"
)

const testSessionCookie = "medtrack_session"

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn func(ctx context.Context, req service.RegisterRequest) (models.User, error)
	loginFn    func(ctx context.Context, email, password string) (models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, req service.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	return m.loginFn(ctx, email, password)
}

type mockMedicineService struct {
	listFn   func(ctx context.Context, userID int64) ([]models.Medicine, error)
	addFn    func(ctx context.Context, userID int64, name, dosage, expiryDate string) (models.Medicine, error)
	deleteFn func(ctx context.Context, userID, medicineID int64) error
}

func (m *mockMedicineService) ListMedicines(ctx context.Context, userID int64) ([]models.Medicine, error) {
	return m.listFn(ctx, userID)
}

func (m *mockMedicineService) AddMedicine(ctx context.Context, userID int64, name, dosage, expiryDate string) (models.Medicine, error) {
	return m.addFn(ctx, userID, name, dosage, expiryDate)
}

func (m *mockMedicineService) DeleteMedicine(ctx context.Context, userID, medicineID int64) error {
	return m.deleteFn(ctx, userID, medicineID)
}

type mockReminderService struct {
	listFn   func(ctx context.Context, userID int64) ([]models.ReminderView, error)
	addFn    func(ctx context.Context, userID, medicineID int64, reminderTime, frequency string) (models.Reminder, error)
	deleteFn func(ctx context.Context, userID, reminderID int64) error
}

func (m *mockReminderService) ListReminders(ctx context.Context, userID int64) ([]models.ReminderView, error) {
	return m.listFn(ctx, userID)
}

func (m *mockReminderService) AddReminder(ctx context.Context, userID, medicineID int64, reminderTime, frequency string) (models.Reminder, error) {
	return m.addFn(ctx, userID, medicineID, reminderTime, frequency)
}

func (m *mockReminderService) DeleteReminder(ctx context.Context, userID, reminderID int64) error {
	return m.deleteFn(ctx, userID, reminderID)
}

type mockAlternativeService struct {
	listFn func(ctx context.Context, condition string) ([]models.AlternativeMedicine, error)
}

func (m *mockAlternativeService) ListAlternatives(ctx context.Context, condition string) ([]models.AlternativeMedicine, error) {
	return m.listFn(ctx, condition)
}

// ─────────────────────────────────────────────
// Renderer stub
// ─────────────────────────────────────────────

// stubRenderer records the last rendered view instead of producing HTML.
type stubRenderer struct {
	lastName string
	lastPage render.Page
}

func (s *stubRenderer) Render(w io.Writer, name string, data any) error {
	s.lastName = name
	if page, ok := data.(render.Page); ok {
		s.lastPage = page
	}
	_, err := fmt.Fprintf(w, "view:%s", name)
	return err
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler wired to the given service mocks, an
// in-memory session store and a recording renderer.
func newTestHandler(t *testing.T, svcs *service.Services) (*Handler, *session.MemoryStore, *stubRenderer) {
	t.Helper()

	sessions := session.NewMemoryStore()
	renderer := &stubRenderer{}
	h := NewHandler(svcs, sessions, renderer, testSessionCookie, logger.Nop())

	return h, sessions, renderer
}

// signIn creates a session directly in the store and returns the cookie to
// attach to authenticated requests.
func signIn(t *testing.T, sessions *session.MemoryStore, userID int64, username string) *http.Cookie {
	t.Helper()

	token, err := sessions.Create(context.Background(), userID, username)
	require.NoError(t, err)

	return &http.Cookie{Name: testSessionCookie, Value: token}
}

// postForm builds a form POST request against the router.
func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// flashFrom extracts the decoded flash cookie set on the response, if any.
func flashFrom(t *testing.T, rec *httptest.ResponseRecorder) *render.Flash {
	t.Helper()

	for _, c := range rec.Result().Cookies() {
		if c.Name == flashCookieName && c.Value != "" && c.MaxAge >= 0 {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.AddCookie(c)
			return popFlash(httptest.NewRecorder(), req)
		}
	}
	return nil
}

// sessionCookieFrom returns the session cookie set on the response, if any.
func sessionCookieFrom(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == testSessionCookie {
			return c
		}
	}
	return nil
}
