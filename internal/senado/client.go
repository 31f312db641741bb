package senado

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/net/proxy"

	"github.com/nao1215/senadoexport/internal/envelope"
)

const (
	// DefaultBaseURL is the root of the Senate open-data API.
	DefaultBaseURL = "https://legis.senado.leg.br/dadosabertos"

	// DefaultUserAgent is sent with every request.
	DefaultUserAgent = "senadoexport/1.0 (+https://github.com/nao1215/senadoexport)"

	// acceptJSON asks the API for JSON instead of its default XML.
	acceptJSON = "application/json"
)

// Params holds query-string parameters for a request.
type Params map[string]string

// Client issues GET requests against the Senate API.
// Its configuration is fixed at construction; create one per base URL and
// pass it to the code that needs it.
type Client struct {
	// http is the resty client carrying the fixed Accept and User-Agent
	// headers and the TLS 1.2 transport built by New.
	http *resty.Client

	// baseURL is the API root without a trailing slash.
	baseURL string

	// userAgent is the User-Agent header sent with every request.
	userAgent string

	// tlsConfig is the configuration installed on the transport.
	// TLSConfig hands out clones so callers cannot change it.
	tlsConfig *tls.Config

	// logger receives the failures Request absorbs, plus resty's own messages.
	logger *slog.Logger
}

// Option configures a Client.
type Option func(*options)

type options struct {
	baseURL   string
	userAgent string
	timeout   time.Duration
	proxyAddr string
	rootCAs   *x509.CertPool
	logger    *slog.Logger
}

// WithBaseURL overrides the API root. A trailing slash is ignored.
func WithBaseURL(u string) Option {
	return func(o *options) {
		o.baseURL = u
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(o *options) {
		o.userAgent = ua
	}
}

// WithTimeout sets an overall per-request timeout. Zero keeps the default of
// no timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithProxy routes all connections through a SOCKS5 proxy at "host:port".
// The address is validated by New; the proxy itself is not contacted until
// the first request. Setting a SOCKS5 proxy disables HTTP(S)_PROXY handling.
func WithProxy(addr string) Option {
	return func(o *options) {
		o.proxyAddr = addr
	}
}

// WithRootCAs replaces the system certificate pool used to verify the server.
func WithRootCAs(pool *x509.CertPool) Option {
	return func(o *options) {
		o.rootCAs = pool
	}
}

// WithLogger sets the logger used to report absorbed failures.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New creates a Client.
//
// The transport always negotiates exactly TLS 1.2; servers that only offer
// TLS 1.3 fail the handshake. It keeps up to 10 idle connections for 90
// seconds and gives each TLS handshake 10 seconds. There is no overall
// request timeout unless WithTimeout is set, so callers bound long runs
// through the context passed to Request.
//
// Without WithProxy, the standard HTTP_PROXY, HTTPS_PROXY and NO_PROXY
// environment variables apply. With WithProxy, connections are dialled
// through SOCKS5 and the environment is ignored.
//
// New returns ErrInvalidProxyAddress when the proxy address is not
// "host:port" with a port in 1-65535. No network traffic happens here; with
// the default options New always succeeds.
func New(opts ...Option) (*Client, error) {
	o := options{
		baseURL:   DefaultBaseURL,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.userAgent == "" {
		o.userAgent = DefaultUserAgent
	}

	tlsConfig := &tls.Config{
		MinVersion: tls.VersionTLS12,
		MaxVersion: tls.VersionTLS12,
		RootCAs:    o.rootCAs,
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         (&net.Dialer{KeepAlive: 30 * time.Second}).DialContext,
		TLSClientConfig:     tlsConfig,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	if o.proxyAddr != "" {
		if !isValidProxyAddress(o.proxyAddr) {
			return nil, ErrInvalidProxyAddress
		}
		dialer, err := proxy.SOCKS5("tcp", o.proxyAddr, nil, proxy.Direct)
		if err != nil {
			return nil, fmt.Errorf("failed to create SOCKS5 dialer: %w", err)
		}
		transport.Proxy = nil
		transport.DialContext = contextDialer(dialer)
	}

	rc := resty.New().
		SetTransport(transport).
		SetHeader("Accept", acceptJSON).
		SetHeader("User-Agent", o.userAgent).
		SetLogger(restyLogger{logger: o.logger})
	if o.timeout > 0 {
		rc.SetTimeout(o.timeout)
	}

	return &Client{
		http:      rc,
		baseURL:   strings.TrimRight(o.baseURL, "/"),
		userAgent: o.userAgent,
		tlsConfig: tlsConfig,
		logger:    o.logger,
	}, nil
}

// isValidProxyAddress reports whether addr is "host:port" with a non-empty
// host and a numeric port in range.
func isValidProxyAddress(addr string) bool {
	host, port, err := net.SplitHostPort(addr)
	if err != nil || host == "" {
		return false
	}
	n, err := strconv.Atoi(port)
	return err == nil && n >= 1 && n <= 65535
}

// contextDialer adapts a proxy.Dialer for http.Transport.DialContext.
func contextDialer(d proxy.Dialer) func(ctx context.Context, network, addr string) (net.Conn, error) {
	if cd, ok := d.(proxy.ContextDialer); ok {
		return cd.DialContext
	}
	return func(_ context.Context, network, addr string) (net.Conn, error) {
		return d.Dial(network, addr)
	}
}

// BaseURL returns the API root without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// UserAgent returns the User-Agent header value.
func (c *Client) UserAgent() string {
	return c.userAgent
}

// TLSConfig returns a copy of the TLS configuration used for connections.
func (c *Client) TLSConfig() *tls.Config {
	return c.tlsConfig.Clone()
}

// URL returns the absolute URL for endpoint.
func (c *Client) URL(endpoint string) string {
	return c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
}

// Request performs GET base/endpoint with the given query parameters and
// returns the decoded JSON object.
//
// Any failure (connection error, timeout, cancellation, non-2xx status,
// invalid JSON, trailing data after the JSON value, or a JSON root that is
// not an object) is logged at warn level and yields an empty, non-nil object.
// Request never retries; callers that want a second attempt call it again.
func (c *Client) Request(ctx context.Context, endpoint string, params Params) envelope.Object {
	if ctx == nil {
		ctx = context.Background()
	}
	url := c.URL(endpoint)

	req := c.http.R().SetContext(ctx)
	if len(params) > 0 {
		req.SetQueryParams(params)
	}

	res, err := req.Get(url)
	if err != nil {
		c.logger.Warn("request failed", "url", url, "error", err)
		return envelope.Object{}
	}
	if !res.IsSuccess() {
		c.logger.Warn("request returned non-success status",
			"url", url,
			"status", res.StatusCode(),
		)
		return envelope.Object{}
	}

	obj, err := envelope.DecodeObject(res.Body())
	if err != nil {
		c.logger.Warn("response is not a JSON object", "url", url, "error", err)
		return envelope.Object{}
	}

	c.logger.Debug("request succeeded",
		"url", url,
		"status", res.StatusCode(),
		"duration", res.Time(),
	)
	return obj
}

// restyLogger forwards resty's internal messages to slog.
type restyLogger struct {
	logger *slog.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "resty")
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.logger.Warn(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "resty")
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "resty")
}
