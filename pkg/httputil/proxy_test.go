package httputil

import (
	"net/http"
	"testing"
)

func TestProxyFromEnvAbsent(t *testing.T) {
	t.Setenv(EnvHTTPProxyHost, "")
	t.Setenv(EnvHTTPProxyPort, "")
	t.Setenv(EnvHTTPSProxyHost, "")
	t.Setenv(EnvHTTPSProxyPort, "")

	s := ProxyFromEnv()
	if s.Configured() {
		t.Error("Configured() should be false with no proxy hosts set")
	}
}

func TestProxyFromEnvDefaultPorts(t *testing.T) {
	t.Setenv(EnvHTTPProxyHost, "proxy.corp")
	t.Setenv(EnvHTTPProxyPort, "")
	t.Setenv(EnvHTTPSProxyHost, "proxy.local")
	t.Setenv(EnvHTTPSProxyPort, "")

	s := ProxyFromEnv()
	if s.HTTPPort != 80 {
		t.Errorf("HTTPPort = %d, want default 80", s.HTTPPort)
	}
	if s.HTTPSPort != 443 {
		t.Errorf("HTTPSPort = %d, want default 443", s.HTTPSPort)
	}

	if u := s.proxyFor("https"); u == nil || u.Host != "proxy.local:443" {
		t.Errorf("proxyFor(https) = %v, want proxy.local:443", u)
	}
	if u := s.proxyFor("http"); u == nil || u.Host != "proxy.corp:80" {
		t.Errorf("proxyFor(http) = %v, want proxy.corp:80", u)
	}
}

func TestProxyFromEnvExplicitPort(t *testing.T) {
	t.Setenv(EnvHTTPProxyHost, "proxy.corp")
	t.Setenv(EnvHTTPProxyPort, "3128")

	s := ProxyFromEnv()
	if s.HTTPPort != 3128 {
		t.Errorf("HTTPPort = %d, want 3128", s.HTTPPort)
	}
}

func TestProxyForUnconfiguredScheme(t *testing.T) {
	s := ProxySettings{HTTPSHost: "proxy.local", HTTPSPort: 443}
	if u := s.proxyFor("http"); u != nil {
		t.Errorf("proxyFor(http) = %v, want nil when only the secure proxy is set", u)
	}
}

func TestNewHTTPClientNoProxy(t *testing.T) {
	c := NewHTTPClient(ProxySettings{})
	if c.Transport != nil {
		t.Error("client without proxy settings should keep the default transport")
	}
	if c.Timeout != httpTimeout {
		t.Errorf("Timeout = %v, want %v", c.Timeout, httpTimeout)
	}
}

func TestNewHTTPClientSecureProxy(t *testing.T) {
	s := ProxySettings{HTTPSHost: "proxy.local", HTTPSPort: 443}
	c := NewHTTPClient(s)

	transport, ok := c.Transport.(*http.Transport)
	if !ok {
		t.Fatalf("Transport = %T, want *http.Transport", c.Transport)
	}
	if transport.TLSClientConfig == nil || !transport.TLSClientConfig.InsecureSkipVerify {
		t.Error("secure proxy should relax certificate validation")
	}

	req, _ := http.NewRequest(http.MethodGet, "https://example.com/", nil)
	u, err := transport.Proxy(req)
	if err != nil {
		t.Fatalf("Proxy() error: %v", err)
	}
	if u == nil || u.Host != "proxy.local:443" {
		t.Errorf("Proxy() = %v, want proxy.local:443", u)
	}

	plain, _ := http.NewRequest(http.MethodGet, "http://example.com/", nil)
	if u, _ := transport.Proxy(plain); u != nil {
		t.Errorf("Proxy() for plain request = %v, want nil", u)
	}
}

func TestNewHTTPClientPlainProxyKeepsTLSValidation(t *testing.T) {
	c := NewHTTPClient(ProxySettings{HTTPHost: "proxy.corp", HTTPPort: 80})
	transport := c.Transport.(*http.Transport)
	if transport.TLSClientConfig != nil {
		t.Error("plain-only proxy must not relax certificate validation")
	}
}
