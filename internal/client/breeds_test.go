package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"mockydog/breeds/internal/config"
	"mockydog/breeds/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const labradorJSON = `[{"name":"Labrador","origin":"UK","size":"Large","coat":"Short","temperament":["Friendly","Active"],"lifeExpectancy":"10-12 years","description":"..."}]`

func newTestServer(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func newTestClient(url string) BreedClient {
	return NewBreedClient(config.APIConfig{BaseURL: url, BreedsPath: "breeds-id"})
}

func TestFetchBreeds_Success(t *testing.T) {
	srv, hits := newTestServer(t, http.StatusOK, labradorJSON)

	breeds, err := newTestClient(srv.URL).FetchBreeds(context.Background())

	require.NoError(t, err)
	require.Len(t, breeds, 1)
	assert.Equal(t, "Labrador", breeds[0].Name)
	assert.Equal(t, "Friendly, Active", breeds[0].TemperamentText())
	assert.Equal(t, int32(1), hits.Load())
}

func TestFetchBreeds_PlainGet(t *testing.T) {
	var (
		method, path, query string
		bodyLen             int
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path, query = r.Method, r.URL.Path, r.URL.RawQuery
		b, _ := io.ReadAll(r.Body)
		bodyLen = len(b)
		_, _ = io.WriteString(w, `[]`)
	}))
	defer srv.Close()

	breeds, err := newTestClient(srv.URL).FetchBreeds(context.Background())

	require.NoError(t, err)
	assert.Empty(t, breeds)
	assert.Equal(t, http.MethodGet, method)
	assert.Equal(t, "/breeds-id", path)
	assert.Empty(t, query)
	assert.Zero(t, bodyLen)
}

func TestFetchBreeds_NonSuccessStatus(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError, http.StatusServiceUnavailable} {
		srv, hits := newTestServer(t, status, labradorJSON)

		_, err := newTestClient(srv.URL).FetchBreeds(context.Background())

		var terr *TransportError
		require.True(t, errors.As(err, &terr))
		assert.Equal(t, KindStatus, terr.Kind)
		assert.Equal(t, status, terr.StatusCode)
		assert.Equal(t, int32(1), hits.Load(), "request must not be retried")
	}
}

func TestFetchBreeds_MalformedBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "<html>oops</html>"},
		{name: "object instead of array", body: `{"name":"Labrador"}`},
		{name: "missing field", body: `[{"name":"Labrador"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestServer(t, http.StatusOK, tt.body)

			breeds, err := newTestClient(srv.URL).FetchBreeds(context.Background())

			assert.Nil(t, breeds)
			var terr *TransportError
			require.True(t, errors.As(err, &terr))
			assert.Equal(t, KindDecode, terr.Kind)
		})
	}
}

func TestFetchBreeds_MissingFieldIsWrapped(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `[{"name":"Labrador"}]`)

	_, err := newTestClient(srv.URL).FetchBreeds(context.Background())

	assert.True(t, errors.Is(err, domain.ErrMissingField))
}

func TestFetchBreeds_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestClient(url).FetchBreeds(context.Background())

	var terr *TransportError
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, KindNetwork, terr.Kind)
	assert.Zero(t, terr.StatusCode)
}

func TestFetchBreeds_Cancelled(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(srv.URL).FetchBreeds(ctx)

	var terr *TransportError
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, KindNetwork, terr.Kind)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestTransportError_Message(t *testing.T) {
	err := &TransportError{Kind: KindStatus, URL: "http://x/y", StatusCode: 500, Err: errors.New("boom")}
	assert.Equal(t, "fetch breeds http://x/y: status error (HTTP 500): boom", err.Error())

	err = &TransportError{Kind: KindNetwork, URL: "http://x/y", Err: errors.New("refused")}
	assert.Equal(t, "fetch breeds http://x/y: network error: refused", err.Error())
}
