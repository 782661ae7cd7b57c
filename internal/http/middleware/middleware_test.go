package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type errBody struct {
	Detail string `json:"detail"`
}

func TestChain_Order(t *testing.T) {
	order := []string{}

	m1 := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "m1-begin")
			next.ServeHTTP(w, r)
			order = append(order, "m1-end")
		})
	}

	m2 := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "m2-begin")
			next.ServeHTTP(w, r)
			order = append(order, "m2-end")
		})
	}

	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
		w.WriteHeader(http.StatusTeapot)
	})

	h := Chain(final, m1, m2)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusTeapot, rec.Code)
	require.Equal(t, []string{"m1-begin", "m2-begin", "handler", "m2-end", "m1-end"}, order)
}

func TestStatusWriter_CapturesStatusAndBytes(t *testing.T) {
	rec := httptest.NewRecorder()
	sw := newStatusWriter(rec)

	sw.WriteHeader(http.StatusAccepted)
	n, err := sw.Write([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)

	require.Equal(t, http.StatusAccepted, sw.status)
	require.Equal(t, 5, sw.count)
}

func TestStatusWriter_ImplicitOK(t *testing.T) {
	rec := httptest.NewRecorder()
	sw := newStatusWriter(rec)

	_, err := sw.Write([]byte("x"))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, sw.status)
}

func TestRequestID_GeneratedAndPropagated(t *testing.T) {
	var seen string

	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("X-Request-Id")
	}))

	t.Run("generated when absent", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Len(t, seen, 32)
		require.Equal(t, seen, rec.Header().Get("X-Request-Id"))
	})

	t.Run("kept when present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-Id", "fixed-id")

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, "fixed-id", seen)
		require.Equal(t, "fixed-id", rec.Header().Get("X-Request-Id"))
	})
}

func TestRecover_PanicBecomesOpaque500(t *testing.T) {
	h := Recover()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("secret internal state")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body errBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "internal error", body.Detail)
	require.NotContains(t, rec.Body.String(), "secret internal state")
}

func TestTimeout_SetsDeadline(t *testing.T) {
	h := Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := r.Context().Deadline()
		require.True(t, ok)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}

func TestTimeout_ZeroIsNoop(t *testing.T) {
	h := Timeout(0)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := r.Context().Deadline()
		require.False(t, ok)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}
