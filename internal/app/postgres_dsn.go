package app

import (
	"net/url"
	"regexp"
	"strings"
)

const maxTracedQueryLength = 512

var queryWhitespaceRegex = regexp.MustCompile(`\s+`)

// postgresDSN fills in connection parameters the store relies on without
// overriding values already present in raw. Key/value style DSNs are
// returned unchanged.
func postgresDSN(raw, applicationName string, disablePreparedBinaryResult bool) string {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || parsed == nil || parsed.Scheme == "" {
		return raw
	}

	defaults := map[string]string{}
	if disablePreparedBinaryResult {
		defaults["disable_prepared_binary_result"] = "yes"
	}
	if applicationName != "" {
		defaults["application_name"] = applicationName
	}
	if len(defaults) == 0 {
		return raw
	}

	query := parsed.Query()
	changed := false
	for key, value := range defaults {
		if query.Get(key) != "" {
			continue
		}
		query.Set(key, value)
		changed = true
	}
	if !changed {
		return raw
	}
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

// dbNameFromDSN reads the database name from a URL or key/value DSN.
func dbNameFromDSN(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if parsed, err := url.Parse(trimmed); err == nil && parsed.Scheme != "" {
		return strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
	}

	for _, token := range strings.Fields(trimmed) {
		if name, ok := strings.CutPrefix(token, "dbname="); ok {
			return strings.Trim(strings.TrimSpace(name), `"'`)
		}
	}
	return ""
}

// formatDBQueryForTrace collapses whitespace so span names stay on one line.
func formatDBQueryForTrace(query string) string {
	normalized := queryWhitespaceRegex.ReplaceAllString(strings.TrimSpace(query), " ")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}
	return normalized[:maxTracedQueryLength] + "..."
}
