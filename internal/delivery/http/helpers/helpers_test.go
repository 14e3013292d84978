package helpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (b loginBody) Validate() []string {
	return ValidationMessages(validation.ValidateStruct(&b,
		validation.Field(&b.Email, validation.Required, is.Email),
		validation.Field(&b.Password, validation.Required),
	))
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantOK     bool
		wantSubstr string
	}{
		{name: "valid", body: `{"email":"a@b.co","password":"x"}`, wantOK: true},
		{name: "unknown field", body: `{"email":"a@b.co","password":"x","admin":true}`, wantSubstr: "invalid request body"},
		{name: "malformed", body: `{`, wantSubstr: "invalid request body"},
		{name: "rules fail sorted by field", body: `{"email":"nope"}`, wantSubstr: "email: must be a valid email address; password: cannot be blank"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			var dest loginBody
			ok := DecodeAndValidate(w, r, &dest)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				return
			}
			require.Equal(t, http.StatusBadRequest, w.Code)
			var apiErr APIError
			require.NoError(t, json.NewDecoder(w.Body).Decode(&apiErr))
			assert.Equal(t, ErrCodeBadRequest, apiErr.Code)
			assert.Contains(t, apiErr.Message, tt.wantSubstr)
		})
	}
}

func TestWriteInternalError_HidesCause(t *testing.T) {
	w := httptest.NewRecorder()
	WriteInternalError(w)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":"internal_error","message":"`+InternalErrorMessage+`"}`, w.Body.String())
}

func TestPathID(t *testing.T) {
	mux := http.NewServeMux()
	var got int64
	var gotErr error
	mux.HandleFunc("GET /events/{id}", func(w http.ResponseWriter, r *http.Request) {
		got, gotErr = PathID(r, "id")
	})

	for path, want := range map[string]int64{"/events/12": 12, "/events/0": 0, "/events/-3": 0, "/events/abc": 0} {
		got, gotErr = 0, nil
		mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, want, got, path)
		if want == 0 {
			assert.Error(t, gotErr, path)
		} else {
			assert.NoError(t, gotErr, path)
		}
	}
}
