package fetch

import "net/url"

// credentialParams are query parameters that never reach a log line.
var credentialParams = []string{"token", "key", "access_token", "session"}

// redact masks credentials in rawURL.
func redact(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	changed := false
	for _, p := range credentialParams {
		if q.Has(p) {
			q.Set(p, "REDACTED")
			changed = true
		}
	}
	if !changed {
		return rawURL
	}
	u.RawQuery = q.Encode()
	return u.String()
}
