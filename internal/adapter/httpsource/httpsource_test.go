package httpsource_test

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/timekeepers/storefront/internal/adapter/httpsource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchProducts(t *testing.T) {

	t.Run("DecodesRecordList", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`[
					{"productId": 5, "productName": "Speedmaster",
					 "productOriginalPrice": 900, "productBrand": "omega",
					 "catName": "sport", "availability": 1,
					 "productDateCreation": "2024-02-01",
					 "imageUrl": "[\"a.jpg\"]", "featuredimg": "a.jpg"}
				]`))
			}))
		defer srv.Close()

		source := httpsource.New(srv.URL, time.Second, 1)

		raw, err := source.FetchProducts(t.Context())
		require.NoError(t, err)
		require.Len(t, raw, 1)
		assert.Equal(t, 5, raw[0].ProductID)
		assert.Equal(t, "omega", raw[0].ProductBrand)
		assert.Equal(t, `["a.jpg"]`, raw[0].ImageURL)
	})

	t.Run("NonOKStatusIsAnError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "down", http.StatusServiceUnavailable)
			}))
		defer srv.Close()

		source := httpsource.New(srv.URL, time.Second, 1)

		_, err := source.FetchProducts(t.Context())
		assert.Error(t, err)
	})

	t.Run("RetriesUpToConfiguredAttempts", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				if calls.Add(1) < 3 {
					http.Error(w, "flaky", http.StatusBadGateway)
					return
				}
				_, _ = w.Write([]byte(`[]`))
			}))
		defer srv.Close()

		source := httpsource.New(srv.URL, time.Second, 3)

		raw, err := source.FetchProducts(t.Context())
		require.NoError(t, err)
		assert.Empty(t, raw)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("MalformedBodyIsAnError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"not": "a list"}`))
			}))
		defer srv.Close()

		source := httpsource.New(srv.URL, time.Second, 1)

		_, err := source.FetchProducts(t.Context())
		assert.Error(t, err)
	})
}
