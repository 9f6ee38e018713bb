package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Athlon05/Balanacea-app/config"
	"github.com/Athlon05/Balanacea-app/middleware"
	"github.com/Athlon05/Balanacea-app/service"
	"github.com/Athlon05/Balanacea-app/session"
	"github.com/Athlon05/Balanacea-app/store"
)

const testUserID = "7e6f6f2d-1111-4222-8333-444455556666"

// fakeBackend 记录存储服务的测试替身
// 按 "METHOD /path" 注册处理器并记录收到的全部记录请求
type fakeBackend struct {
	t *testing.T

	mu       sync.Mutex
	calls    []string
	handlers map[string]http.HandlerFunc

	// 登录失败时返回的消息，空表示登录成功
	signInError string
	// 注册返回不带 access token 的会话，模拟开启邮箱确认的后端
	signUpPending bool
}

func newFakeBackend(t *testing.T) *fakeBackend {
	return &fakeBackend{t: t, handlers: make(map[string]http.HandlerFunc)}
}

func (f *fakeBackend) on(method, path string, h http.HandlerFunc) {
	f.handlers[method+" "+path] = h
}

func (f *fakeBackend) restCalls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sessionBody := `{
		"access_token": "tok-test", "refresh_token": "ref-test", "expires_in": 3600,
		"user": {"id": "` + testUserID + `", "email": "user@example.com"}
	}`

	switch r.URL.Path {
	case "/auth/v1/token":
		if f.signInError != "" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error_description":"` + f.signInError + `"}`))
			return
		}
		_, _ = w.Write([]byte(sessionBody))
		return
	case "/auth/v1/signup":
		if f.signUpPending {
			_, _ = w.Write([]byte(`{"user": {"id": "` + testUserID + `", "email": "user@example.com"}}`))
			return
		}
		_, _ = w.Write([]byte(sessionBody))
		return
	case "/auth/v1/logout":
		w.WriteHeader(http.StatusNoContent)
		return
	}

	key := r.Method + " " + r.URL.Path
	f.mu.Lock()
	f.calls = append(f.calls, key)
	f.mu.Unlock()

	if h, ok := f.handlers[key]; ok {
		h(w, r)
		return
	}
	f.t.Errorf("未预期的请求: %s", key)
	w.WriteHeader(http.StatusNotFound)
}

type testEnv struct {
	fake   *fakeBackend
	router *gin.Engine
	gate   *session.Gate
}

// newTestEnv 搭建接口测试环境，路由与正式注册保持一致
func newTestEnv(t *testing.T, signedIn bool) (*testEnv, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fake := newFakeBackend(t)
	srv := httptest.NewServer(fake)

	cfg := &config.Config{}
	cfg.Store.EndpointURL = srv.URL
	cfg.Store.APIKey = "test-api-key"

	st, err := store.NewClient(cfg)
	require.NoError(t, err)

	gate := session.NewGate(st, cfg)
	gate.Start()

	if signedIn {
		_, err := gate.SignIn(context.Background(), "user@example.com", "password123")
		require.NoError(t, err)
		require.Eventually(t, func() bool { return gate.Current() != nil }, time.Second, 10*time.Millisecond)
	}

	editor := service.NewEditor(st, gate)
	authHandler := NewAuthHandler(gate)
	txHandler := NewTransactionHandler(st)
	recordHandler := NewRecordHandler(editor, st)
	exportHandler := NewExportHandler(st)

	r := gin.New()
	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/session", authHandler.GetSession)
		}

		authed := v1.Group("")
		authed.Use(middleware.SessionRequired(gate))
		{
			authed.GET("/transactions", txHandler.List)
			authed.GET("/transactions/summary", txHandler.Summary)
			authed.GET("/records/options", recordHandler.Options)
			authed.POST("/records/:kind", recordHandler.Create)
			authed.GET("/records/:kind/:id", recordHandler.Get)
			authed.PUT("/records/:kind/:id", recordHandler.Update)
			authed.DELETE("/records/:kind/:id", recordHandler.Delete)
			authed.GET("/export/csv", exportHandler.ExportCSV)
			authed.GET("/export/excel", exportHandler.ExportExcel)
		}
	}

	env := &testEnv{fake: fake, router: r, gate: gate}
	return env, func() {
		gate.Close()
		srv.Close()
	}
}

// perform 发起请求并返回响应记录器
func (e *testEnv) perform(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// decodeResponse 解析通用响应结构
func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// dataMap 取响应 data 字段为对象
func dataMap(t *testing.T, resp Response) map[string]interface{} {
	t.Helper()
	m, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "data 不是对象: %v", resp.Data)
	return m
}
