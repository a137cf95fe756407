package app

import (
	"net/url"
	"strings"
)

// normalizeDBURL appends disable_prepared_binary_result=yes when asked,
// unless the DSN already carries a value for it. Some pgbouncer setups
// reject binary result rows on prepared statements.
func normalizeDBURL(raw string, disablePreparedBinaryResult bool) string {
	if !disablePreparedBinaryResult {
		return raw
	}

	u, err := url.Parse(raw)
	if err != nil || u == nil {
		return raw
	}

	q := u.Query()
	if q.Get("disable_prepared_binary_result") != "" {
		return raw
	}
	q.Set("disable_prepared_binary_result", "yes")
	u.RawQuery = q.Encode()
	return u.String()
}

// dbNameFromURL extracts the database name from either a postgres://
// URL or a key=value DSN. Returns "" when it cannot tell.
func dbNameFromURL(raw string) string {
	dsn := strings.TrimSpace(raw)

	if u, err := url.Parse(dsn); err == nil && u != nil && u.Scheme != "" {
		if name := strings.TrimSpace(strings.TrimPrefix(u.Path, "/")); name != "" {
			return name
		}
	}

	for _, field := range strings.Fields(dsn) {
		name, ok := strings.CutPrefix(field, "dbname=")
		if !ok {
			continue
		}
		name = strings.Trim(strings.TrimSpace(name), `"'`)
		if name != "" {
			return name
		}
	}

	return ""
}
