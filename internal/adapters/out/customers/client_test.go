package customers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*httpExistsClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return newHTTPExistsClient(server.URL, time.Second), server
}

func TestHTTPExistsClient_Exists(t *testing.T) {
	ctx := context.Background()

	t.Run("should report an existing customer", func(t *testing.T) {
		var gotPath, gotAccept string
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAccept = r.Header.Get("Accept")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"success": true,
				"data": {"customerId": "CUST-001", "exists": true, "message": "Cliente encontrado"},
				"message": "ok",
				"timestamp": "2025-01-14T09:32:45Z",
				"path": "/internal/api/v1/customers/CUST-001/exists"
			}`))
		})

		exists, err := client.exists(ctx, "CUST-001")

		require.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, "/internal/api/v1/customers/CUST-001/exists", gotPath)
		assert.Equal(t, "application/json", gotAccept)
	})

	t.Run("should report a known missing customer", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"success": true, "data": {"customerId": "CUST-404", "exists": false}}`))
		})

		exists, err := client.exists(ctx, "CUST-404")

		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("should treat a 404 as an authoritative negative", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		exists, err := client.exists(ctx, "CUST-404")

		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("should treat a server error as unknown", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		exists, err := client.exists(ctx, "CUST-001")

		require.Error(t, err)
		assert.False(t, exists)
		assert.Contains(t, err.Error(), "status 500")
	})

	t.Run("should treat a malformed body as not found", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{not json`))
		})

		exists, err := client.exists(ctx, "CUST-001")

		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("should treat an unsuccessful envelope as not found", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"success": false, "data": null, "message": "Cliente no encontrado"}`))
		})

		exists, err := client.exists(ctx, "CUST-001")

		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("should escape the customer id in the path", func(t *testing.T) {
		var gotEscapedPath string
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotEscapedPath = r.URL.EscapedPath()
			_, _ = w.Write([]byte(`{"success": true, "data": {"exists": true}}`))
		})

		_, err := client.exists(ctx, "cust/../admin")

		require.NoError(t, err)
		assert.Equal(t, "/internal/api/v1/customers/cust%2F..%2Fadmin/exists", gotEscapedPath)
	})

	t.Run("should fail when the service is unreachable", func(t *testing.T) {
		client, server := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {})
		server.Close()

		exists, err := client.exists(ctx, "CUST-001")

		require.Error(t, err)
		assert.False(t, exists)
	})
}
