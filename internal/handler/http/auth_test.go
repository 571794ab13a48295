package http

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testAuthResult = models.AuthResult{
	User: models.PublicUser{
		UserID:    1,
		Name:      "Alice",
		Email:     "alice@example.com",
		Gender:    models.GenderFemale,
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	},
	Token: "signed.jwt.token",
}

// ── signup ──

func TestSignup_Created(t *testing.T) {
	m, h := newTestHandler(t)
	req := models.SignupRequest{Name: "Alice", Email: "alice@example.com", Password: "secret1", Gender: models.GenderFemale}
	m.auth.EXPECT().Signup(gomock.Any(), req).Return(testAuthResult, nil)

	rr := doRequest(t, h, http.MethodPost, "/auth/signup", req)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "Bearer signed.jwt.token", rr.Header().Get("Authorization"))

	got := decodeJSON[models.AuthResult](t, rr)
	assert.Equal(t, testAuthResult.Token, got.Token)
	assert.Equal(t, testAuthResult.User.UserID, got.User.UserID)
	assert.Equal(t, testAuthResult.User.Email, got.User.Email)
	assert.NotContains(t, rr.Body.String(), "password")
}

func TestSignup_DuplicateEmail_Forbidden(t *testing.T) {
	m, h := newTestHandler(t)
	m.auth.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(models.AuthResult{}, service.ErrDuplicateEmail)

	rr := doRequest(t, h, http.MethodPost, "/auth/signup", models.SignupRequest{Email: "alice@example.com"})

	require.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, service.ErrDuplicateEmail.Error(), decodeError(t, rr).Error)
	assert.Empty(t, rr.Header().Get("Authorization"))
}

func TestSignup_ValidationFailed(t *testing.T) {
	m, h := newTestHandler(t)
	verr := &validators.ValidationError{}
	verr.Add(validators.FieldEmail, "must be a valid email address")
	verr.Add(validators.FieldPassword, "must be between 6 and 72 bytes")
	m.auth.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(models.AuthResult{}, verr)

	rr := doRequest(t, h, http.MethodPost, "/auth/signup", models.SignupRequest{Email: "nope"})

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	resp := decodeError(t, rr)
	assert.Equal(t, validators.ErrValidation.Error(), resp.Error)
	require.Len(t, resp.Fields, 2)
	assert.Equal(t, validators.FieldEmail, resp.Fields[0].Field)
	assert.Equal(t, validators.FieldPassword, resp.Fields[1].Field)
}

func TestSignup_MalformedBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not JSON", `name=alice`},
		{"truncated", `{"name":"Alice"`},
		{"unknown field", `{"name":"Alice","is_admin":true}`},
		{"trailing data", `{"name":"Alice"}{"name":"Bob"}`},
		{"wrong type", `{"name":42}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, h := newTestHandler(t)

			rr := doRequest(t, h, http.MethodPost, "/auth/signup", tt.body)

			require.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Contains(t, decodeError(t, rr).Error, "malformed JSON")
		})
	}
}

func TestSignup_InternalError_HidesDetails(t *testing.T) {
	m, h := newTestHandler(t)
	m.auth.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(models.AuthResult{}, errors.New("pq: connection reset by peer"))

	rr := doRequest(t, h, http.MethodPost, "/auth/signup", models.SignupRequest{})

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), decodeError(t, rr).Error)
	assert.NotContains(t, rr.Body.String(), "connection reset")
}

// ── login ──

func TestLogin_OK(t *testing.T) {
	m, h := newTestHandler(t)
	req := models.LoginRequest{Email: "alice@example.com", Password: "secret1"}
	m.auth.EXPECT().Login(gomock.Any(), req).Return(testAuthResult, nil)

	rr := doRequest(t, h, http.MethodPost, "/auth/login", req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Bearer signed.jwt.token", rr.Header().Get("Authorization"))
	assert.Equal(t, testAuthResult.Token, decodeJSON[models.AuthResult](t, rr).Token)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	m, h := newTestHandler(t)
	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.AuthResult{}, service.ErrInvalidCredentials)

	rr := doRequest(t, h, http.MethodPost, "/auth/login", models.LoginRequest{Email: "alice@example.com", Password: "wrong"})

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, service.ErrInvalidCredentials.Error(), decodeError(t, rr).Error)
	assert.Equal(t, `Bearer realm="go-blog"`, rr.Header().Get("WWW-Authenticate"))
}

func TestLogin_MalformedBody_NoServiceCall(t *testing.T) {
	// the mock controller fails the test on any unexpected Login call
	_, h := newTestHandler(t)

	rr := doRequest(t, h, http.MethodPost, "/auth/login", `{"email":`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
