package main

import (
	"net/url"
	"strings"
)

// matchCORSOrigin reports whether origin is allowed by any configured
// pattern. Patterns are exact origins, "*", or a wildcard subdomain form
// like "https://*.example.com".
func matchCORSOrigin(origin string, patterns []string) bool {
	for _, p := range patterns {
		if p == "*" {
			return true
		}
		if p == origin {
			return true
		}
		if !strings.Contains(p, "*") {
			continue
		}
		pu, err := url.Parse(strings.Replace(p, "*.", "", 1))
		if err != nil {
			continue
		}
		ou, err := url.Parse(origin)
		if err != nil {
			continue
		}
		if pu.Scheme != ou.Scheme {
			continue
		}
		if strings.HasSuffix(ou.Host, "."+pu.Host) {
			return true
		}
	}
	return false
}
