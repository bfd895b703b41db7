package util

import (
	"net/http"
	"net/url"
	"strings"
)

// NewProxyFunc creates a proxy function for NLP provider HTTP clients.
// If no proxy URLs are configured, falls back to environment variables.
// Hosts listed in noProxy (comma-separated) bypass the proxy.
func NewProxyFunc(httpProxy, httpsProxy, noProxy string) func(*http.Request) (*url.URL, error) {
	if httpProxy == "" && httpsProxy == "" {
		return http.ProxyFromEnvironment
	}

	skip := make(map[string]bool)
	for _, host := range strings.Split(noProxy, ",") {
		if host = strings.TrimSpace(host); host != "" {
			skip[host] = true
		}
	}

	return func(req *http.Request) (*url.URL, error) {
		if skip[req.URL.Hostname()] {
			return nil, nil
		}
		if req.URL.Scheme == "https" && httpsProxy != "" {
			return url.Parse(httpsProxy)
		}
		if httpProxy != "" {
			return url.Parse(httpProxy)
		}
		return http.ProxyFromEnvironment(req)
	}
}
