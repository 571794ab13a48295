package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// routeCase describes a single expected route.
type routeCase struct {
	method string
	path   string
	body   string
	// protected routes answer 401 without a token instead of reaching the service
	protected bool
}

// expectedRoutes lists every route that Init() must register.
var expectedRoutes = []routeCase{
	// auth
	{method: http.MethodPost, path: "/auth/signup", body: `{}`},
	{method: http.MethodPost, path: "/auth/login", body: `{}`},
	// users
	{method: http.MethodGet, path: "/users/me", protected: true},
	{method: http.MethodGet, path: "/users/1"},
	// posts
	{method: http.MethodGet, path: "/posts"},
	{method: http.MethodGet, path: "/posts/1"},
	{method: http.MethodPost, path: "/posts", body: `{}`, protected: true},
	{method: http.MethodPatch, path: "/posts/1", body: `{}`, protected: true},
	{method: http.MethodDelete, path: "/posts/1", protected: true},
	// service
	{method: http.MethodGet, path: "/version"},
	{method: http.MethodGet, path: "/metrics"},
	{method: http.MethodGet, path: "/docs"},
	{method: http.MethodGet, path: "/docs/openapi.yaml"},
	{method: http.MethodGet, path: "/docs/openapi.json"},
}

func TestInit_AllRoutesRegistered(t *testing.T) {
	for _, rc := range expectedRoutes {
		t.Run(rc.method+" "+rc.path, func(t *testing.T) {
			m, h := newTestHandler(t)
			m.auth.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(models.AuthResult{}, nil).AnyTimes()
			m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.AuthResult{}, nil).AnyTimes()
			m.users.EXPECT().GetUser(gomock.Any(), gomock.Any()).Return(models.PublicUser{}, nil).AnyTimes()
			m.posts.EXPECT().ListPosts(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
			m.posts.EXPECT().GetPost(gomock.Any(), gomock.Any()).Return(models.Post{}, nil).AnyTimes()
			m.appInfo.EXPECT().GetAppInfo(gomock.Any()).Return(models.AppInfo{}).AnyTimes()

			var body any
			if rc.body != "" {
				body = rc.body
			}
			rr := doRequest(t, h, rc.method, rc.path, body)

			assert.NotEqual(t, http.StatusNotFound, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
			if rc.protected {
				assert.Equal(t, http.StatusUnauthorized, rr.Code)
			} else {
				assert.Less(t, rr.Code, http.StatusBadRequest, "body: %s", rr.Body.String())
			}
		})
	}
}

func TestInit_UnknownRoute_JSON404(t *testing.T) {
	_, h := newTestHandler(t)

	rr := doRequest(t, h, http.MethodGet, "/no/such/route", nil)

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, ErrNoRoute.Error(), decodeError(t, rr).Error)
}

func TestInit_WrongMethod_JSON405(t *testing.T) {
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPut, "/posts/1"},
		{http.MethodGet, "/auth/signup"},
		{http.MethodDelete, "/version"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			_, h := newTestHandler(t)

			rr := doRequest(t, h, tt.method, tt.path, nil)

			require.Equal(t, http.StatusMethodNotAllowed, rr.Code)
			assert.Equal(t, ErrMethodNotAllowed.Error(), decodeError(t, rr).Error)
		})
	}
}

func TestInit_EchoesTraceID(t *testing.T) {
	m, h := newTestHandler(t)
	m.appInfo.EXPECT().GetAppInfo(gomock.Any()).Return(models.AppInfo{})

	rr := doRequest(t, h, http.MethodGet, "/version", nil, traceIDHeader, "trace-abc")

	assert.Equal(t, "trace-abc", rr.Header().Get(traceIDHeader))
}

func TestInit_PanicRecovered(t *testing.T) {
	m, h := newTestHandler(t)
	m.appInfo.EXPECT().GetAppInfo(gomock.Any()).DoAndReturn(func(context.Context) models.AppInfo {
		panic("boom")
	})

	rr := doRequest(t, h, http.MethodGet, "/version", nil)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
