package scanner

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/maxvaer/recontools/internal/config"
)

func testOpts(follow bool) *config.StatusOptions {
	return &config.StatusOptions{
		Timeout:         2 * time.Second,
		FollowRedirects: follow,
	}
}

func TestCheckSendsBrowserHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	req, err := NewRequester(testOpts(false))
	if err != nil {
		t.Fatal(err)
	}
	o := req.Check(context.Background(), srv.URL)
	if o.Kind != KindOK || o.StatusCode != 200 {
		t.Fatalf("expected Ok(200), got %+v", o)
	}

	for name, want := range browserHeaders {
		if name == "Connection" {
			continue
		}
		if v := got.Get(name); v != want {
			t.Errorf("header %s = %q, want %q", name, v, want)
		}
	}
	if !strings.Contains(got.Get("User-Agent"), "Firefox/30.0") {
		t.Errorf("unexpected User-Agent %q", got.Get("User-Agent"))
	}
}

func TestCheckTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-time.After(2 * time.Second):
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()
	defer close(release)

	opts := testOpts(false)
	opts.Timeout = 100 * time.Millisecond
	req, err := NewRequester(opts)
	if err != nil {
		t.Fatal(err)
	}

	o := req.Check(context.Background(), srv.URL)
	if o.Kind != KindTimeout {
		t.Fatalf("expected Timeout, got %+v", o)
	}
	if o.Label() != "Timeout" {
		t.Errorf("Label() = %q", o.Label())
	}
}

func TestCheckSelfSignedCertificate(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	t.Run("verification disabled", func(t *testing.T) {
		req, err := NewRequester(testOpts(false))
		if err != nil {
			t.Fatal(err)
		}
		o := req.Check(context.Background(), srv.URL)
		if o.Kind != KindOK || o.StatusCode != 200 {
			t.Fatalf("self-signed certificate should be accepted, got %+v", o)
		}
	})

	t.Run("verification enabled", func(t *testing.T) {
		opts := testOpts(false)
		opts.VerifyCertificates = true
		req, err := NewRequester(opts)
		if err != nil {
			t.Fatal(err)
		}
		o := req.Check(context.Background(), srv.URL)
		if o.Kind != KindRequestError {
			t.Fatalf("expected certificate failure, got %+v", o)
		}
		if !strings.Contains(o.Detail, "certificate") {
			t.Errorf("detail should mention the certificate, got %q", o.Detail)
		}
	})
}

func TestCheckRedirectChain(t *testing.T) {
	longPath := "/" + strings.Repeat("x", 100)
	mux := http.NewServeMux()
	mux.HandleFunc("/start", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/middle", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/middle", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, longPath, http.StatusFound)
	})
	mux.HandleFunc(longPath, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	req, err := NewRequester(testOpts(true))
	if err != nil {
		t.Fatal(err)
	}
	o := req.Check(context.Background(), srv.URL+"/start")
	if o.Kind != KindRedirect || o.StatusCode != 302 {
		t.Fatalf("expected Redirect(302), got %+v", o)
	}

	want := " > " + srv.URL + "/middle > " + TruncateURL(srv.URL+longPath)
	if o.Chain != want {
		t.Errorf("chain = %q, want %q", o.Chain, want)
	}
	if !strings.HasSuffix(o.Chain, "..") {
		t.Errorf("long hop should be truncated, got %q", o.Chain)
	}
}

func TestCheckRedirectNotFollowed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/elsewhere", http.StatusTemporaryRedirect)
	}))
	defer srv.Close()

	req, err := NewRequester(testOpts(false))
	if err != nil {
		t.Fatal(err)
	}
	o := req.Check(context.Background(), srv.URL)
	if o.Kind != KindOK || o.StatusCode != http.StatusTemporaryRedirect {
		t.Fatalf("expected raw 307, got %+v", o)
	}
}

func TestCheckTooManyRedirects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/loop", http.StatusFound)
	}))
	defer srv.Close()

	req, err := NewRequester(testOpts(true))
	if err != nil {
		t.Fatal(err)
	}
	o := req.Check(context.Background(), srv.URL+"/loop")
	if o.Kind != KindRequestError {
		t.Fatalf("expected RequestError, got %+v", o)
	}
	if !strings.Contains(o.Detail, fmt.Sprintf("exceeded %d redirects", maxRedirects)) {
		t.Errorf("unexpected detail %q", o.Detail)
	}
}

func TestCheckEmptyURL(t *testing.T) {
	req, err := NewRequester(testOpts(false))
	if err != nil {
		t.Fatal(err)
	}
	o := req.Check(context.Background(), "")
	if o.Kind != KindRequestError {
		t.Fatalf("expected RequestError for empty URL, got %+v", o)
	}
}

func TestParseProxy(t *testing.T) {
	m, err := ParseProxy("http://127.0.0.1:8080")
	if err != nil {
		t.Fatalf("ParseProxy: %v", err)
	}
	if len(m) != 1 {
		t.Fatalf("expected exactly one entry, got %v", m)
	}
	u, ok := m["http"]
	if !ok || u.String() != "http://127.0.0.1:8080" {
		t.Fatalf("expected http -> http://127.0.0.1:8080, got %v", m)
	}

	httpReq := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
	if got, _ := m.Proxy(httpReq); got == nil || got.Host != "127.0.0.1:8080" {
		t.Errorf("http target should use the proxy, got %v", got)
	}
	httpsReq := httptest.NewRequest(http.MethodGet, "https://example.com/", nil)
	if got, _ := m.Proxy(httpsReq); got != nil {
		t.Errorf("https target should not use an http-keyed proxy, got %v", got)
	}

	if m, err := ParseProxy(""); err != nil || m != nil {
		t.Errorf("empty proxy should give a nil map, got %v, %v", m, err)
	}
	if _, err := ParseProxy("127.0.0.1:8080"); err == nil {
		t.Error("expected error for proxy without scheme")
	}
}

func TestCheckRoutesThroughProxy(t *testing.T) {
	var proxiedHost string
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		proxiedHost = r.Host
		w.WriteHeader(http.StatusNoContent)
	}))
	defer proxy.Close()

	opts := testOpts(false)
	opts.Proxy = proxy.URL
	req, err := NewRequester(opts)
	if err != nil {
		t.Fatal(err)
	}
	if keys := len(req.Proxies()); keys != 1 {
		t.Fatalf("expected one proxy entry, got %d", keys)
	}

	o := req.Check(context.Background(), "http://target.test/page")
	if o.Kind != KindOK || o.StatusCode != http.StatusNoContent {
		t.Fatalf("expected the proxy's 204, got %+v", o)
	}
	if proxiedHost != "target.test" {
		t.Errorf("proxy saw host %q, want target.test", proxiedHost)
	}
}

func TestTruncateURL(t *testing.T) {
	exact := strings.Repeat("a", 75)
	long := strings.Repeat("b", 76)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"short", "http://a.test/x", "http://a.test/x"},
		{"exactly 75", exact, exact},
		{"76 chars", long, strings.Repeat("b", 75) + ".."},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateURL(tt.in); got != tt.want {
				t.Errorf("TruncateURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
