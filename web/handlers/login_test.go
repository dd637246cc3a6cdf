package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qurocare.com/alms/core"
	"qurocare.com/alms/model"
	"qurocare.com/alms/store"
)

type noopNotifier struct{}

func (noopNotifier) Send(context.Context, string, string, string) error { return nil }

func newTestRouter(t *testing.T) (*gin.Engine, *core.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	st := store.New(dir)
	st.Employees = []model.Employee{
		{Name: "Asha Nair", Passkey: "0423", Email: "asha.nair@qurocare.com", RegisteredID: "QC-101", ActualClockIn: "09:00"},
	}
	require.NoError(t, st.SaveEmployees())
	require.NoError(t, st.SaveAttendance())
	require.NoError(t, st.SaveLeaves())

	opened, err := store.Open(dir)
	require.NoError(t, err)

	svc := core.NewService(opened, noopNotifier{}, "admin@qurocare.com")
	svc.Now = func() time.Time { return time.Date(2026, 3, 5, 9, 5, 0, 0, time.UTC) }

	r := gin.New()
	Register(r, svc, nil, []byte("test-signing-secret"))
	return r, svc
}

func doJSON(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/v1/login", `{"name":"Asha Nair","passkey":"0423"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)
	return resp.Data.Token
}

func TestLoginFailures(t *testing.T) {
	r, _ := newTestRouter(t)

	tests := []struct {
		name     string
		body     string
		code     int
		expected string
	}{
		{
			name:     "No name selected",
			body:     `{"name":"","passkey":"0423"}`,
			code:     http.StatusBadRequest,
			expected: "Please select a valid name.",
		},
		{
			name:     "Blank passkey",
			body:     `{"name":"Asha Nair","passkey":""}`,
			code:     http.StatusBadRequest,
			expected: "Please enter your passkey.",
		},
		{
			name:     "Wrong passkey",
			body:     `{"name":"Asha Nair","passkey":"423"}`,
			code:     http.StatusUnauthorized,
			expected: "Invalid name or passkey.",
		},
		{
			name:     "Unknown name",
			body:     `{"name":"Nobody","passkey":"0423"}`,
			code:     http.StatusUnauthorized,
			expected: "Invalid name or passkey.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/api/v1/login", tt.body, "")
			assert.Equal(t, tt.code, w.Code)
			assert.Contains(t, w.Body.String(), tt.expected)
		})
	}
}

func TestLoginIssuesUsableToken(t *testing.T) {
	r, _ := newTestRouter(t)
	token := login(t, r)

	w := doJSON(r, http.MethodGet, "/api/v1/attendance/today", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"state":"NOT_STARTED"`)
	assert.Contains(t, w.Body.String(), `"next_action":"clock_in"`)
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/v1/attendance/clockin", "{}", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodGet, "/api/v1/attendance/today", "", "garbage-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestClockInClockOutFlow(t *testing.T) {
	r, svc := newTestRouter(t)
	token := login(t, r)

	w := doJSON(r, http.MethodPost, "/api/v1/attendance/clockin", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Clocked in at 09:05. Status: Full Day")

	// second clock-in conflicts
	w = doJSON(r, http.MethodPost, "/api/v1/attendance/clockin", "", token)
	assert.Equal(t, http.StatusConflict, w.Code)

	svc.Now = func() time.Time { return time.Date(2026, 3, 5, 17, 35, 0, 0, time.UTC) }
	w = doJSON(r, http.MethodPost, "/api/v1/attendance/clockout", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Clocked out at 17:35. Worked for 8.50 hours.")

	w = doJSON(r, http.MethodPost, "/api/v1/attendance/clockout", "", token)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateLeave(t *testing.T) {
	r, svc := newTestRouter(t)
	token := login(t, r)

	body := `{"start_date":"2026-03-10","end_date":"2026-03-12","reason":"family function"}`
	w := doJSON(r, http.MethodPost, "/api/v1/leaves", body, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"start_date":"2026-03-10"`)

	require.Len(t, svc.Store.Leaves, 1)
	assert.Equal(t, 1, svc.Store.Leaves[0].ID)
	assert.Equal(t, "family function", svc.Store.Leaves[0].Reason)
}
