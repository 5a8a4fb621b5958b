package scanner

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/maxvaer/recontools/internal/config"
)

// maxRedirects caps how many hops are followed before the check is
// reported as a request error.
const maxRedirects = 30

// chainURLLimit is the number of characters kept per redirect hop.
const chainURLLimit = 75

// browserHeaders are sent with every request and are not configurable.
var browserHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Macintosh; Intel Mac OS X 10.9; rv:30.0) Gecko/20100101 Firefox/30.0",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	"Accept-Language": "en-us,en;q=0.5",
	"Accept-Encoding": "gzip, deflate",
	"DNT":             "1",
	"Connection":      "close",
}

// ProxyMap routes requests by target scheme. It holds at most one entry,
// keyed by the proxy URL's own scheme, so "http://127.0.0.1:8080" proxies
// http:// targets only.
type ProxyMap map[string]*url.URL

// ParseProxy builds the single-entry ProxyMap for raw. An empty raw value
// yields a nil map.
func ParseProxy(raw string) (ProxyMap, error) {
	if raw == "" {
		return nil, nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid proxy URL %q: %w", raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid proxy URL %q: expected scheme://host:port", raw)
	}
	return ProxyMap{u.Scheme: u}, nil
}

// Proxy implements http.Transport.Proxy.
func (m ProxyMap) Proxy(req *http.Request) (*url.URL, error) {
	if u, ok := m[req.URL.Scheme]; ok {
		return u, nil
	}
	return nil, nil
}

// Requester issues one GET per URL and classifies the result.
type Requester struct {
	client  *http.Client
	proxies ProxyMap
}

// NewRequester creates a Requester from the provided options.
func NewRequester(opts *config.StatusOptions) (*Requester, error) {
	proxies, err := ParseProxy(opts.Proxy)
	if err != nil {
		return nil, err
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		// Certificate checks are skipped unless explicitly requested.
		TLSClientConfig: &tls.Config{InsecureSkipVerify: !opts.VerifyCertificates},
		DialContext: (&net.Dialer{
			Timeout: opts.Timeout,
		}).DialContext,
		DisableKeepAlives: true,
	}
	if proxies != nil {
		transport.Proxy = proxies.Proxy
	}

	return newRequester(transport, proxies, opts), nil
}

func newRequester(rt http.RoundTripper, proxies ProxyMap, opts *config.StatusOptions) *Requester {
	client := &http.Client{
		Transport: rt,
		Timeout:   opts.Timeout,
	}

	if opts.FollowRedirects {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("exceeded %d redirects", maxRedirects)
			}
			return nil
		}
	} else {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	return &Requester{client: client, proxies: proxies}
}

// Proxies returns the proxy mapping in effect, nil when no proxy is set.
func (r *Requester) Proxies() ProxyMap {
	return r.proxies
}

// Check fetches rawURL once and returns its outcome. Failures are reported
// in the outcome, never as an error.
func (r *Requester) Check(ctx context.Context, rawURL string) Outcome {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Outcome{Kind: KindRequestError, URL: rawURL, Detail: err.Error()}
	}
	for k, v := range browserHeaders {
		req.Header.Set(k, v)
	}
	req.Close = true

	resp, err := r.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return Outcome{Kind: KindTimeout, URL: rawURL}
		}
		return Outcome{Kind: KindRequestError, URL: rawURL, Detail: err.Error()}
	}
	_ = resp.Body.Close()

	hops := redirectChain(resp)
	if len(hops) == 0 {
		return Outcome{Kind: KindOK, URL: rawURL, StatusCode: resp.StatusCode}
	}

	var chain strings.Builder
	for _, hop := range hops {
		chain.WriteString(" > ")
		chain.WriteString(TruncateURL(hop))
	}
	return Outcome{Kind: KindRedirect, URL: rawURL, StatusCode: RedirectStatus, Chain: chain.String()}
}

// redirectChain returns the URLs requested after each redirect, in the
// order they were visited. It is empty when no redirect was followed.
func redirectChain(resp *http.Response) []string {
	var hops []string
	for req := resp.Request; req != nil && req.Response != nil; req = req.Response.Request {
		hops = append(hops, req.URL.String())
	}
	slices.Reverse(hops)
	return hops
}

// TruncateURL shortens u to 75 characters followed by "..".
func TruncateURL(u string) string {
	runes := []rune(u)
	if len(runes) > chainURLLimit {
		return string(runes[:chainURLLimit]) + ".."
	}
	return u
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
