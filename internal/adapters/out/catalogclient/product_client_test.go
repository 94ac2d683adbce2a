package catalogclient_test

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"pedidos/internal/adapters/out/catalogclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductCatalogClient_GetByIDs(t *testing.T) {
	t.Run("should decode a successful batch response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/produtos", r.URL.Path)
			assert.Equal(t, "123,321", r.URL.Query().Get("ids"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[
				{"id":"123","name":"Hamburguer","price":10.0,"category":"lanche"},
				{"id":"321","name":"Petit Gateau","price":19.9,"category":"sobremesa"}
			]`))
		}))
		defer server.Close()

		client := catalogclient.NewProductCatalogClient(server.URL, time.Second, time.Second)
		products, err := client.GetByIDs(t.Context(), []string{"123", "321"})

		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "Hamburguer", products[0].Name())
		assert.Equal(t, int64(1000), products[0].UnitPrice().Cents())
		assert.Equal(t, int64(1990), products[1].UnitPrice().Cents())
	})

	t.Run("should return partial catalog answers as-is", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`[{"id":"123","name":"Hamburguer","price":10.0,"category":"lanche"}]`))
		}))
		defer server.Close()

		client := catalogclient.NewProductCatalogClient(server.URL, time.Second, time.Second)
		products, err := client.GetByIDs(t.Context(), []string{"123", "999"})

		require.NoError(t, err)
		require.Len(t, products, 1)
	})

	t.Run("should retry server errors until success", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			_, _ = w.Write([]byte(`[{"id":"123","name":"Hamburguer","price":10.0,"category":"lanche"}]`))
		}))
		defer server.Close()

		client := catalogclient.NewProductCatalogClient(server.URL, time.Second, 10*time.Second)
		products, err := client.GetByIDs(t.Context(), []string{"123"})

		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.GreaterOrEqual(t, calls.Load(), int32(3))
	})

	t.Run("should not retry client errors", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := catalogclient.NewProductCatalogClient(server.URL, time.Second, 10*time.Second)
		_, err := client.GetByIDs(t.Context(), []string{"123"})

		require.Error(t, err)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("should give up once retries are exhausted", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := catalogclient.NewProductCatalogClient(server.URL, time.Second, 100*time.Millisecond)
		_, err := client.GetByIDs(t.Context(), []string{"123"})

		require.Error(t, err)
	})

	t.Run("should reject products with negative price", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`[{"id":"123","name":"Hamburguer","price":-1,"category":"lanche"}]`))
		}))
		defer server.Close()

		client := catalogclient.NewProductCatalogClient(server.URL, time.Second, time.Second)
		_, err := client.GetByIDs(t.Context(), []string{"123"})

		require.Error(t, err)
	})
}
