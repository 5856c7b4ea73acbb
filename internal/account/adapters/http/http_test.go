package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accounthttp "gogetaccount/internal/account/adapters/http"
	"gogetaccount/internal/account/app/controllers"
	"gogetaccount/internal/account/ports/presentation"
	"gogetaccount/pkg/logger"
)

var ErrDependencyDown = errors.New("dependency down")

type controllerFunc func(ctx context.Context, request presentation.Request) presentation.Response

func (f controllerFunc) Handle(ctx context.Context, request presentation.Request) presentation.Response {
	return f(ctx, request)
}

type recordingController struct {
	request  presentation.Request
	ctx      context.Context
	response presentation.Response
}

func (c *recordingController) Handle(ctx context.Context, request presentation.Request) presentation.Response {
	c.ctx = ctx
	c.request = request
	return c.response
}

func newApp(t *testing.T, routes accounthttp.Routes) *fiber.App {
	t.Helper()
	if routes.SignUp == nil {
		routes.SignUp = &recordingController{response: controllers.OK(nil)}
	}
	if routes.Login == nil {
		routes.Login = &recordingController{response: controllers.OK(nil)}
	}
	if routes.Registry == nil {
		routes.Registry = prometheus.NewRegistry()
	}
	app := fiber.New()
	accounthttp.SetupRouter(app, routes)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func TestSignUpRoute_PassesBodyAndWritesEnvelope(t *testing.T) {
	signUp := &recordingController{response: controllers.OK(map[string]string{"id": "a1", "name": "Ann"})}
	app := newApp(t, accounthttp.Routes{SignUp: signUp})

	resp, body := doJSON(t, app, http.MethodPost, "/api/signup",
		`{"name":"Ann","email":"ann@x.com","password":"pw1","passwordConfirmation":"pw1"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]any{"id": "a1", "name": "Ann"}, body)
	assert.Equal(t, map[string]string{
		"name":                 "Ann",
		"email":                "ann@x.com",
		"password":             "pw1",
		"passwordConfirmation": "pw1",
	}, signUp.request.Body)

	id, ok := logger.GetRequestID(signUp.ctx)
	require.True(t, ok)
	assert.Equal(t, id, resp.Header.Get(logger.HeaderRequestID))
}

func TestLoginRoute_Unauthorized(t *testing.T) {
	app := newApp(t, accounthttp.Routes{Login: &recordingController{response: controllers.Unauthorized()}})

	resp, body := doJSON(t, app, http.MethodPost, "/api/login", `{"email":"ann@x.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Unauthorized", body["kind"])
}

func TestRoute_InternalServerErrorHidesTrace(t *testing.T) {
	app := newApp(t, accounthttp.Routes{SignUp: &recordingController{
		response: controllers.InternalServerError(errors.New("pq: secret detail")),
	}})

	resp, body := doJSON(t, app, http.MethodPost, "/api/signup", `{}`)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "InternalServer", body["kind"])
	assert.NotContains(t, body, "trace")
	assert.NotContains(t, body["error"], "secret detail")
}

func TestRoute_BodyDecoding(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected map[string]string
	}{
		{name: "empty body", body: "", expected: map[string]string{}},
		{name: "null field is absent", body: `{"name":null,"email":"a@b.c"}`, expected: map[string]string{"email": "a@b.c"}},
		{name: "scalar values as strings", body: `{"age":30,"admin":false}`, expected: map[string]string{"age": "30", "admin": "false"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signUp := &recordingController{response: controllers.OK(nil)}
			app := newApp(t, accounthttp.Routes{SignUp: signUp})

			resp, _ := doJSON(t, app, http.MethodPost, "/api/signup", tt.body)

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, tt.expected, signUp.request.Body)
		})
	}
}

func TestRoute_MalformedJSON(t *testing.T) {
	signUp := &recordingController{response: controllers.OK(nil)}
	app := newApp(t, accounthttp.Routes{SignUp: signUp})

	resp, body := doJSON(t, app, http.MethodPost, "/api/signup", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "InvalidParam", body["kind"])
	assert.Equal(t, "body", body["field"])
	assert.Nil(t, signUp.request.Body)
}

func TestRoute_PanicIsRecovered(t *testing.T) {
	app := newApp(t, accounthttp.Routes{SignUp: controllerFunc(func(context.Context, presentation.Request) presentation.Response {
		panic("boom")
	})})

	resp, body := doJSON(t, app, http.MethodPost, "/api/signup", `{}`)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "InternalServer", body["kind"])
}

func TestRequestID_Propagated(t *testing.T) {
	signUp := &recordingController{response: controllers.OK(nil)}
	app := newApp(t, accounthttp.Routes{SignUp: signUp})

	req := httptest.NewRequest(http.MethodPost, "/api/signup", strings.NewReader(`{}`))
	req.Header.Set(logger.HeaderRequestID, "req-42")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, "req-42", resp.Header.Get(logger.HeaderRequestID))
	id, ok := logger.GetRequestID(signUp.ctx)
	require.True(t, ok)
	assert.Equal(t, "req-42", id)
}

func TestHealth(t *testing.T) {
	t.Run("all dependencies healthy", func(t *testing.T) {
		app := newApp(t, accounthttp.Routes{Health: map[string]accounthttp.HealthCheck{
			"postgres": func(context.Context) error { return nil },
		}})

		resp, body := doJSON(t, app, http.MethodGet, "/health", "")

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "ok", body["status"])
	})

	t.Run("dependency unavailable", func(t *testing.T) {
		app := newApp(t, accounthttp.Routes{Health: map[string]accounthttp.HealthCheck{
			"postgres": func(context.Context) error { return nil },
			"redis":    func(context.Context) error { return ErrDependencyDown },
		}})

		resp, body := doJSON(t, app, http.MethodGet, "/health", "")

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "unavailable", body["status"])
		assert.Equal(t, map[string]any{"postgres": "ok", "redis": "unavailable"}, body["checks"])
	})
}

func TestMetrics(t *testing.T) {
	app := newApp(t, accounthttp.Routes{})

	resp, _ := doJSON(t, app, http.MethodPost, "/api/login", `{}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/signup", `{}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	metricsResp, err := app.Test(req)
	require.NoError(t, err)
	defer metricsResp.Body.Close()

	raw, err := io.ReadAll(metricsResp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, metricsResp.StatusCode)
	assert.Contains(t, string(raw), `account_http_requests_total{method="POST",route="/api/login",status="200"} 1`)
	assert.Contains(t, string(raw), `account_http_requests_total{method="POST",route="/api/signup",status="200"} 1`)
	assert.Contains(t, string(raw), `account_http_requests_total{method="GET",route="/health",status="200"} 1`)
	assert.NotContains(t, string(raw), `method="GETT"`)
	assert.Contains(t, string(raw), "account_http_request_duration_seconds")
}

func TestNotFound(t *testing.T) {
	app := newApp(t, accounthttp.Routes{})

	resp, body := doJSON(t, app, http.MethodGet, "/unknown", "")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "route not found", body["error"])
}
