package httputil

import (
	"crypto/tls"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"
)

const httpTimeout = 10 * time.Second

// Environment settings for proxy routing. The two pairs are independent:
// one selects the proxy for plain HTTP requests, the other for HTTPS.
const (
	EnvHTTPProxyHost  = "MOLD_HTTP_PROXY_HOST"
	EnvHTTPProxyPort  = "MOLD_HTTP_PROXY_PORT"
	EnvHTTPSProxyHost = "MOLD_HTTPS_PROXY_HOST"
	EnvHTTPSProxyPort = "MOLD_HTTPS_PROXY_PORT"
)

// ProxySettings holds optional proxy hosts and ports for the plain and
// secure transports. An empty host disables the proxy for that transport.
type ProxySettings struct {
	HTTPHost  string
	HTTPPort  int
	HTTPSHost string
	HTTPSPort int
}

// ProxyFromEnv reads proxy settings from the environment. A host with no
// port (or an unparseable port) gets the transport default: 80 for plain,
// 443 for secure.
func ProxyFromEnv() ProxySettings {
	return ProxySettings{
		HTTPHost:  os.Getenv(EnvHTTPProxyHost),
		HTTPPort:  portFromEnv(EnvHTTPProxyPort, 80),
		HTTPSHost: os.Getenv(EnvHTTPSProxyHost),
		HTTPSPort: portFromEnv(EnvHTTPSProxyPort, 443),
	}
}

func portFromEnv(key string, def int) int {
	if p, err := strconv.Atoi(os.Getenv(key)); err == nil && p > 0 {
		return p
	}
	return def
}

// Configured reports whether any proxy host is set.
func (s ProxySettings) Configured() bool {
	return s.HTTPHost != "" || s.HTTPSHost != ""
}

// proxyFor returns the proxy URL for the given request scheme, or nil if
// no proxy is configured for that transport.
func (s ProxySettings) proxyFor(scheme string) *url.URL {
	host, port := s.HTTPHost, s.HTTPPort
	if scheme == "https" {
		host, port = s.HTTPSHost, s.HTTPSPort
	}
	if host == "" {
		return nil
	}
	return &url.URL{Scheme: "http", Host: host + ":" + strconv.Itoa(port)}
}

// NewHTTPClient creates an HTTP client with the standard catalog timeout.
// Without proxy settings it uses the default transport. With a secure
// proxy configured, certificate validation is relaxed so the proxy can
// intercept TLS.
func NewHTTPClient(s ProxySettings) *http.Client {
	if !s.Configured() {
		return &http.Client{Timeout: httpTimeout}
	}

	transport := &http.Transport{
		Proxy: func(req *http.Request) (*url.URL, error) {
			return s.proxyFor(req.URL.Scheme), nil
		},
	}
	if s.HTTPSHost != "" {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}
	return &http.Client{Timeout: httpTimeout, Transport: transport}
}
