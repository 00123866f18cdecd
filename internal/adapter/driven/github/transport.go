package github

import "net/http"

// acceptTransport sets the Accept header GitHub documents for its REST API
// on every outgoing request. go-github defaults to the older v3 media type.
type acceptTransport struct {
	base http.RoundTripper // http.DefaultTransport when nil.
}

func (t *acceptTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("Accept", acceptHeader)

	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(clone)
}
