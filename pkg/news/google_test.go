package news

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestGoogleFetch(t *testing.T) {
	payload := map[string]interface{}{
		"items": []map[string]interface{}{
			{
				"title":       "Robots Learn to Walk",
				"snippet":     "A new controller lets robots walk on ice.",
				"displayLink": "www.example.com",
				"link":        "https://www.example.com/robots-walk",
				"pagemap": map[string]interface{}{
					"cse_image":     []map[string]interface{}{{"src": "https://img.example.com/full.jpg"}},
					"cse_thumbnail": []map[string]interface{}{{"src": "https://img.example.com/thumb.jpg"}},
				},
			},
		},
	}

	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"key": q.Get("key"),
			"cx":  q.Get("cx"),
			"q":   q.Get("q"),
			"num": q.Get("num"),
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := &GoogleClient{
		apiKey:     "test-key",
		engineID:   "test-cx",
		baseURL:    googleBaseURL,
		httpClient: srv.Client(),
	}
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	articles, err := client.Fetch(context.Background(), "robots & ai", 10)

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(articles))
	assert.Equal(t, "test-key", gotQuery["key"])
	assert.Equal(t, "test-cx", gotQuery["cx"])
	assert.Equal(t, "robots & ai", gotQuery["q"])
	assert.Equal(t, "10", gotQuery["num"])

	a := articles[0]
	assert.Equal(t, "Robots Learn to Walk", a.Title)
	assert.Equal(t, "A new controller lets robots walk on ice.", a.Description)
	assert.Equal(t, "www.example.com", a.Source)
	assert.Equal(t, "https://www.example.com/robots-walk", a.URL)
	assert.Equal(t, "https://img.example.com/full.jpg", a.Image)
	assert.Equal(t, "", a.PublishedAt)
}

func TestGoogleFetch_Placeholders(t *testing.T) {
	payload := map[string]interface{}{
		"items": []map[string]interface{}{
			{
				"pagemap": map[string]interface{}{
					"cse_thumbnail": []map[string]interface{}{{"src": "https://img.example.com/thumb.jpg"}},
				},
			},
			{},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := &GoogleClient{apiKey: "k", engineID: "cx", baseURL: srv.URL, httpClient: srv.Client()}

	articles, err := client.Fetch(context.Background(), "anything", 10)

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(articles))

	a := articles[0]
	assert.Equal(t, NoTitle, a.Title)
	assert.Equal(t, NoDescription, a.Description)
	assert.Equal(t, UnknownSource, a.Source)
	assert.Equal(t, MissingURL, a.URL)
	assert.Equal(t, "https://img.example.com/thumb.jpg", a.Image)
	assert.Equal(t, "", articles[1].Image)
}

func TestGoogleFetch_NoItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"searchInformation":{"totalResults":"0"}}`))
	}))
	defer srv.Close()

	client := &GoogleClient{apiKey: "k", engineID: "cx", baseURL: srv.URL, httpClient: srv.Client()}

	articles, err := client.Fetch(context.Background(), "nothing", 10)

	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(articles))
}

func TestGoogleFetch_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"code":403,"message":"API key not valid"}}`))
	}))
	defer srv.Close()

	client := &GoogleClient{apiKey: "bad", engineID: "cx", baseURL: srv.URL, httpClient: srv.Client()}

	articles, err := client.Fetch(context.Background(), "robots", 10)

	assert.NotEqual(t, nil, err)
	assert.Equal(t, 0, len(articles))
}

// rewriteTransport redirects all requests to a fixed base URL (test server).
type rewriteTransport struct {
	base  string
	inner http.RoundTripper
}

func (rt *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req2 := req.Clone(req.Context())
	parsed, _ := http.NewRequest("GET", rt.base, nil)
	req2.URL.Host = parsed.URL.Host
	req2.URL.Scheme = parsed.URL.Scheme
	return rt.inner.RoundTrip(req2)
}
