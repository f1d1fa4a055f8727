package bfhl

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEmail = "someone@example.edu"

func newTestRouter(answerer *stubAnswerer) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(NewRegistry(asAnswerer(answerer)), nil, logger)

	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(svc, testEmail, logger))
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec, out
}

func TestHealth(t *testing.T) {
	h := newTestRouter(nil)

	for i := 0; i < 2; i++ {
		rec, out := do(t, h, http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Equal(t, map[string]any{"is_success": true, "official_email": testEmail}, out)

		// a failing request in between must not leak into /health
		do(t, h, http.MethodPost, "/bfhl", `{"nope": 1}`)
	}
}

func TestBFHLSuccess(t *testing.T) {
	h := newTestRouter(&stubAnswerer{answer: "Paris"})

	cases := []struct {
		name string
		body string
		data string
	}{
		{"fibonacci", `{"fibonacci": 7}`, `[0,1,1,2,3,5,8]`},
		{"fibonacci one", `{"fibonacci": 1}`, `[0]`},
		{"prime", `{"prime": [1,2,3,4,5,9,11]}`, `[2,3,5,11]`},
		{"prime none", `{"prime": [4, 6]}`, `[]`},
		{"lcm", `{"lcm": [4, 6]}`, `12`},
		{"hcf", `{"hcf": [12, 18, 24]}`, `6`},
		{"hcf coprime", `{"hcf": [7, 13]}`, `1`},
		{"AI", `{"AI": "What is the capital of France?"}`, `"Paris"`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec, out := do(t, h, http.MethodPost, "/bfhl", c.body)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, true, out["is_success"])
			assert.Equal(t, testEmail, out["official_email"])
			assert.NotContains(t, out, "message")

			data, err := json.Marshal(out["data"])
			require.NoError(t, err)
			assert.JSONEq(t, c.data, string(data))
		})
	}
}

func TestBFHLLargeFibonacciStaysNumeric(t *testing.T) {
	h := newTestRouter(nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/bfhl", strings.NewReader(`{"fibonacci": 100}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ",218922995834555169026]")
}

func TestBFHLFailures(t *testing.T) {
	h := newTestRouter(&stubAnswerer{err: errors.New("boom")})

	cases := []struct {
		name    string
		body    string
		message string
	}{
		{"two keys", `{"fibonacci": 5, "prime": [2, 3]}`, MsgExactlyOneKey},
		{"no keys", `{}`, MsgExactlyOneKey},
		{"unknown key", `{"sum": [1, 2]}`, "Invalid key. Supported keys: fibonacci, prime, lcm, hcf, AI"},
		{"fibonacci zero", `{"fibonacci": 0}`, MsgPositiveInteger},
		{"fibonacci string", `{"fibonacci": "5"}`, MsgPositiveInteger},
		{"fibonacci above cap", `{"fibonacci": 200000}`, "Input must be a positive integer no greater than 10000"},
		{"prime not array", `{"prime": 7}`, MsgIntegerArray},
		{"lcm zero", `{"lcm": [4, 0]}`, MsgZeroInLCM},
		{"lcm single", `{"lcm": [4]}`, MsgAtLeastTwo},
		{"hcf single", `{"hcf": [4]}`, MsgAtLeastTwo},
		{"AI blank", `{"AI": "   "}`, MsgNonEmptyQuestion},
		{"AI upstream failure", `{"AI": "What is the capital of France?"}`, MsgAIFailed},
		{"invalid json", `{"fibonacci":`, MsgBodyNotObject},
		{"array body", `[1, 2]`, MsgBodyNotObject},
		{"null body", `null`, MsgBodyNotObject},
		{"trailing data", `{"fibonacci": 5} {"prime": [2]}`, MsgBodyNotObject},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec, out := do(t, h, http.MethodPost, "/bfhl", c.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, false, out["is_success"])
			assert.Equal(t, testEmail, out["official_email"])
			assert.Equal(t, c.message, out["message"])
			assert.NotContains(t, out, "data")
		})
	}
}
