package cache

import "net/url"

// DeriveKey maps a request's method, path and query parameters to a
// deterministic cache key, optionally namespaced by prefix:
//
//	api:GET:/api/v1/artists/42?market=SE&page=2
//
// Query parameter keys are sorted before serialization, so two semantically
// equal query strings with different parameter order collide on the same key.
// Identical requests under the same prefix always derive identical keys;
// any differing query parameter derives a different key.
func DeriveKey(prefix, method, path string, query url.Values) string {
	key := method + ":" + path
	if len(query) > 0 {
		// url.Values.Encode sorts by parameter key.
		key += "?" + query.Encode()
	}
	if prefix != "" {
		key = prefix + ":" + key
	}
	return key
}

// KeyPattern builds a glob pattern covering every derived key under the
// given prefix, method and path prefix, regardless of query string. Pass
// "*" as method to cover all methods. Intended for DeleteMatching calls
// from write handlers after a mutation:
//
//	store.DeleteMatching(ctx, cache.KeyPattern("api", "GET", "/api/v1/artists"))
func KeyPattern(prefix, method, pathPrefix string) string {
	pattern := method + ":" + pathPrefix + "*"
	if prefix != "" {
		pattern = prefix + ":" + pattern
	}
	return pattern
}
