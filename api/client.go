// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

package api

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/alburnum/maas/internal/creds"
	"github.com/alburnum/maas/version"
	"github.com/hashicorp/errwrap"
	cleanhttp "github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-hclog"
	retryablehttp "github.com/hashicorp/go-retryablehttp"
	rootcerts "github.com/hashicorp/go-rootcerts"
)

const (
	EnvMaasCACert        = "MAAS_CACERT"
	EnvMaasCAPath        = "MAAS_CAPATH"
	EnvMaasClientTimeout = "MAAS_CLIENT_TIMEOUT"
	EnvMaasTLSInsecure   = "MAAS_TLS_INSECURE"
	EnvMaasTLSServerName = "MAAS_TLS_SERVER_NAME"
	EnvMaasMaxRetries    = "MAAS_MAX_RETRIES"
)

// Config is used to configure the creation of the client.
type Config struct {
	// Address is the API URL of the MAAS server, normalized by
	// NormalizeURL, e.g. http://maas.example.com/MAAS/api/1.0/
	Address string

	// Credentials sign every request when set. Nil means anonymous access.
	Credentials *creds.Credentials

	// HttpClient is the HTTP client to use. cleanhttp's pooled client is
	// used by default.
	HttpClient *http.Client

	// TLSConfig contains TLS configuration information. After modifying
	// these values, ConfigureTLS should be called.
	TLSConfig *TLSConfig

	// Headers contains extra headers sent with every request.
	Headers http.Header

	// MaxRetries controls the maximum number of times to retry when a 5xx
	// error occurs. Set to 0 to disable retrying.
	MaxRetries int

	// Timeout is for setting custom timeout parameter in the HttpClient
	Timeout time.Duration

	// Backoff is the backoff function used between retries.
	Backoff retryablehttp.Backoff

	// CheckRetry is the retry policy.
	CheckRetry retryablehttp.CheckRetry

	// Logger receives request level debug output.
	Logger hclog.Logger

	// Error is set if there was an error reading the environment in
	// DefaultConfig.
	Error error
}

// TLSConfig contains the parameters needed to configure TLS on the HTTP client
// used to communicate with MAAS.
type TLSConfig struct {
	// CACert is the path to a PEM-encoded CA cert file to use to verify the
	// server SSL certificate.
	CACert string

	// CAPath is the path to a directory of PEM-encoded CA cert files to verify
	// the server SSL certificate.
	CAPath string

	// ServerName, if set, is used to set the SNI host when connecting via TLS.
	ServerName string

	// Insecure enables or disables SSL verification
	Insecure bool
}

// DefaultConfig returns a default configuration for the client. It is
// safe to modify the return value of this function.
//
// If an error is encountered reading the environment, Error is set on the
// returned Config.
func DefaultConfig() *Config {
	config := &Config{
		HttpClient: cleanhttp.DefaultPooledClient(),
		Timeout:    time.Second * 60,
		TLSConfig:  &TLSConfig{},
		Logger:     hclog.NewNullLogger(),
	}

	transport := config.HttpClient.Transport.(*http.Transport)
	transport.TLSHandshakeTimeout = 10 * time.Second
	transport.TLSClientConfig = &tls.Config{
		MinVersion: tls.VersionTLS12,
	}

	config.Backoff = retryablehttp.LinearJitterBackoff
	config.MaxRetries = 0
	config.Headers = make(http.Header)

	// We read the environment now; after DefaultConfig returns we can
	// override values from command line flags, which take precedence.
	if err := config.ReadEnvironment(); err != nil {
		config.Error = err
		return config
	}

	return config
}

// ConfigureTLS takes a set of TLS configurations and applies those to the
// HTTP client.
func (c *Config) ConfigureTLS() error {
	if c.HttpClient == nil {
		c.HttpClient = DefaultConfig().HttpClient
	}
	if c.TLSConfig == nil {
		c.TLSConfig = &TLSConfig{}
	}
	transport, ok := c.HttpClient.Transport.(*http.Transport)
	if !ok {
		return fmt.Errorf("unsupported transport type %T", c.HttpClient.Transport)
	}
	if transport.TLSClientConfig == nil {
		transport.TLSClientConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	clientTLSConfig := transport.TLSClientConfig

	if c.TLSConfig.CACert != "" || c.TLSConfig.CAPath != "" {
		rootConfig := &rootcerts.Config{
			CAFile: c.TLSConfig.CACert,
			CAPath: c.TLSConfig.CAPath,
		}
		if err := rootcerts.ConfigureTLS(clientTLSConfig, rootConfig); err != nil {
			return err
		}
	}

	clientTLSConfig.InsecureSkipVerify = c.TLSConfig.Insecure

	if c.TLSConfig.ServerName != "" {
		clientTLSConfig.ServerName = c.TLSConfig.ServerName
	}

	return nil
}

// ReadEnvironment reads configuration information from the environment. If
// there is an error, no configuration value is updated.
func (c *Config) ReadEnvironment() error {
	var maxRetries *int
	var timeout *time.Duration
	tlsConfig := TLSConfig{}
	if c.TLSConfig != nil {
		tlsConfig = *c.TLSConfig
	}
	var foundTLSConfig bool

	if v := os.Getenv(EnvMaasMaxRetries); v != "" {
		r, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return fmt.Errorf("could not parse %s: %w", EnvMaasMaxRetries, err)
		}
		n := int(r)
		maxRetries = &n
	}

	if v := os.Getenv(EnvMaasClientTimeout); v != "" {
		d, err := parseDurationSecond(v)
		if err != nil {
			return fmt.Errorf("could not parse %s: %w", EnvMaasClientTimeout, err)
		}
		timeout = &d
	}

	if v := os.Getenv(EnvMaasCACert); v != "" {
		foundTLSConfig = true
		tlsConfig.CACert = v
	}
	if v := os.Getenv(EnvMaasCAPath); v != "" {
		foundTLSConfig = true
		tlsConfig.CAPath = v
	}
	if v := os.Getenv(EnvMaasTLSServerName); v != "" {
		foundTLSConfig = true
		tlsConfig.ServerName = v
	}
	if v := os.Getenv(EnvMaasTLSInsecure); v != "" {
		insecure, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("could not parse %s: %w", EnvMaasTLSInsecure, err)
		}
		foundTLSConfig = true
		tlsConfig.Insecure = insecure
	}

	if maxRetries != nil {
		c.MaxRetries = *maxRetries
	}
	if timeout != nil {
		c.Timeout = *timeout
	}
	if foundTLSConfig {
		c.TLSConfig = &tlsConfig
		return c.ConfigureTLS()
	}
	return nil
}

// parseDurationSecond parses a duration, treating a bare integer as seconds.
func parseDurationSecond(in string) (time.Duration, error) {
	in = strings.TrimSpace(in)
	if n, err := strconv.ParseInt(in, 10, 64); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	return time.ParseDuration(in)
}

// Client is the client to the MAAS API. Create a client with NewClient.
type Client struct {
	modifyLock sync.RWMutex
	config     *Config
}

// NewClient returns a new client for the given configuration.
//
// If the configuration is nil, DefaultConfig() is used, which is the
// recommended starting configuration.
func NewClient(c *Config) (*Client, error) {
	def := DefaultConfig()
	if def == nil {
		return nil, fmt.Errorf("could not create/read default configuration")
	}
	if def.Error != nil {
		return nil, errwrap.Wrapf("error encountered setting up default configuration: {{err}}", def.Error)
	}

	if c == nil {
		c = def
	}

	if c.HttpClient == nil {
		c.HttpClient = def.HttpClient
	}
	if c.HttpClient.Transport == nil {
		c.HttpClient.Transport = def.HttpClient.Transport
	}
	if c.HttpClient.CheckRedirect == nil {
		// Ensure redirects are not automatically followed
		c.HttpClient.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			// Returning this value causes the Go net library to not close the
			// response body and to nil out the error. Otherwise retry clients may
			// try three times on every redirect because it sees an error from this
			// function (to prevent redirects) passing through to it.
			return http.ErrUseLastResponse
		}
	}
	if c.Logger == nil {
		c.Logger = hclog.NewNullLogger()
	}
	if c.Headers == nil {
		c.Headers = make(http.Header)
	}
	if c.Address != "" {
		addr, err := NormalizeURL(c.Address)
		if err != nil {
			return nil, err
		}
		c.Address = addr
	}

	return &Client{
		config: c,
	}, nil
}

// SetAddress sets the API URL of the MAAS server in the client.
func (c *Client) SetAddress(addr string) error {
	normalized, err := NormalizeURL(addr)
	if err != nil {
		return err
	}
	c.modifyLock.Lock()
	defer c.modifyLock.Unlock()
	c.config.Address = normalized
	return nil
}

// Address returns the API URL of the MAAS server.
func (c *Client) Address() string {
	c.modifyLock.RLock()
	defer c.modifyLock.RUnlock()
	return c.config.Address
}

// Credentials returns the API key used to sign requests.
func (c *Client) Credentials() *creds.Credentials {
	c.modifyLock.RLock()
	defer c.modifyLock.RUnlock()
	return c.config.Credentials
}

// NewRequest creates a new raw request object to query the MAAS server
// configured for this client. requestPath is relative to the API URL and
// keeps its trailing slash, which MAAS requires.
func (c *Client) NewRequest(ctx context.Context, method, requestPath string, query url.Values) (*http.Request, error) {
	c.modifyLock.RLock()
	addr := c.config.Address
	headers := copyHeaders(c.config.Headers)
	c.modifyLock.RUnlock()

	if addr == "" {
		return nil, fmt.Errorf("no server address configured")
	}
	u, err := url.Parse(addr)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.URL.Path = strings.TrimSuffix(u.Path, "/") + "/" + strings.TrimPrefix(requestPath, "/")
	req.URL.RawPath = ""
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	req.Header = headers
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.Get().UserAgent())
	return req, nil
}

// Do takes a properly configured request and applies client configuration to
// it, returning the response.
func (c *Client) Do(r *http.Request) (*Response, error) {
	c.modifyLock.RLock()
	maxRetries := c.config.MaxRetries
	checkRetry := c.config.CheckRetry
	backoff := c.config.Backoff
	httpClient := c.config.HttpClient
	timeout := c.config.Timeout
	credentials := c.config.Credentials
	logger := c.config.Logger
	c.modifyLock.RUnlock()

	ctx := r.Context()

	req, err := retryablehttp.FromRequest(r)
	if err != nil {
		return nil, fmt.Errorf("error converting request to retryable request: %w", err)
	}
	if req == nil {
		return nil, fmt.Errorf("nil request created")
	}

	var prepareRetry retryablehttp.PrepareRetry
	if credentials != nil {
		s := newSigner(credentials)
		if err := s.sign(req.Request); err != nil {
			return nil, fmt.Errorf("error signing request: %w", err)
		}
		prepareRetry = s.sign
	}

	var cancel context.CancelFunc = func() {}
	if timeout != 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout)
	}
	req.Request = req.Request.WithContext(ctx)

	if backoff == nil {
		backoff = retryablehttp.LinearJitterBackoff
	}

	if checkRetry == nil {
		checkRetry = retryablehttp.DefaultRetryPolicy
	}

	client := &retryablehttp.Client{
		HTTPClient:   httpClient,
		Logger:       logger,
		RetryWaitMin: 1000 * time.Millisecond,
		RetryWaitMax: 1500 * time.Millisecond,
		RetryMax:     maxRetries,
		Backoff:      backoff,
		CheckRetry:   checkRetry,
		ErrorHandler: retryablehttp.PassthroughErrorHandler,
		PrepareRetry: prepareRetry,
	}

	result, err := client.Do(req)
	if err != nil {
		cancel()
		if strings.Contains(err.Error(), "tls: oversized") {
			err = errwrap.Wrapf(
				"{{err}}\n\n"+
					"This error usually means that the server is running with TLS disabled\n"+
					"but the client is configured to use TLS. Please log in again using\n"+
					"an http:// url for the server.",
				err)
		}
		return nil, err
	}

	// The body is read in full so the timeout context can be released here.
	resp, err := newResponse(result)
	cancel()
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func copyHeaders(in http.Header) http.Header {
	ret := make(http.Header)
	for k, v := range in {
		for _, val := range v {
			ret[k] = append(ret[k], val)
		}
	}
	return ret
}
