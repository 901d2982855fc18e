package api

import (
	"context"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestWriteKindError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteKindError(w, http.StatusConflict, "failed_precondition", "post has expired")

	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))
	require.JSONEq(t, `{"error":"post has expired","kind":"failed_precondition"}`, w.Body.String())
}

func TestWriteInternalErrorf(t *testing.T) {
	w := httptest.NewRecorder()

	WriteInternalErrorf(context.Background(), w, "failed to do something: %s", "boom")

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.JSONEq(t, `{"error":"internal error","kind":"internal"}`, w.Body.String())
}

func TestBodyLimiterMiddleware(t *testing.T) {
	h := BodyLimiterMiddleware(4)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := ioutil.ReadAll(r.Body); err != nil {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("ok")))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("too long")))
	require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestLoggerMiddleware(t *testing.T) {
	var scoped bool

	h := LoggerMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, scoped = r.Context().Value(ctxKey{}).(logrus.FieldLogger)
		w.WriteHeader(http.StatusTeapot)
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusTeapot, w.Code)
	require.True(t, scoped)
}
