// Package httputil provides the HTTP transport used by catalog backends.
//
// # Overview
//
// [Client] is a thin GET-and-decode wrapper around [net/http.Client]. It
// exists so the catalog source can classify failures: every non-2xx
// response surfaces as a [*StatusError] carrying the status code, which
// lets callers tell 404 apart from all other failures. Lower-level
// connectivity errors are wrapped and propagated unchanged. There is no
// retry, no backoff, and no response caching; a failed request fails
// immediately.
//
// # Proxy Configuration
//
// [ProxyFromEnv] reads four independent optional settings:
//
//	MOLD_HTTP_PROXY_HOST / MOLD_HTTP_PROXY_PORT   (plain transport, port defaults to 80)
//	MOLD_HTTPS_PROXY_HOST / MOLD_HTTPS_PROXY_PORT (secure transport, port defaults to 443)
//
// An absent host means no proxy for that transport. When a secure proxy is
// configured, certificate validation is relaxed on the transport.
package httputil
