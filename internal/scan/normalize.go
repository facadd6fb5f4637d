package scan

import (
	"encoding/json"
	"errors"
	"net/url"
	"regexp"
	"strings"
)

var ErrUnrecognizedPayload = errors.New("unrecognized scan payload")

// A scanned or typed payload arrives in one of four shapes: a URL carrying
// the code as a query parameter, a JSON envelope with a code field, any
// string containing a code=<value> substring (malformed URLs), or the bare
// code itself. Each attempt is pure and side-effect-free; the first match
// wins. Wrapped shapes must be tried before the bare-code fallback; a real
// code never contains '{' or 'code='.
type parserAttempt func(trimmed string) (code string, matched bool)

var normalizeAttempts = []parserAttempt{
	parseURLPayload,
	parseJSONPayload,
	parseCodeParam,
}

// Normalize reduces a raw scanner payload to the canonical validation code.
// Only a payload that is empty after trimming fails.
func Normalize(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrUnrecognizedPayload
	}

	for _, attempt := range normalizeAttempts {
		if code, ok := attempt(trimmed); ok {
			return code, nil
		}
	}

	return trimmed, nil
}

func parseURLPayload(trimmed string) (string, bool) {
	u, err := url.Parse(trimmed)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", false
	}
	code := u.Query().Get("code")
	if code == "" {
		return "", false
	}
	return code, true
}

func parseJSONPayload(trimmed string) (string, bool) {
	if !strings.HasPrefix(trimmed, "{") {
		return "", false
	}
	var envelope struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal([]byte(trimmed), &envelope); err != nil {
		return "", false
	}
	if envelope.Code == "" {
		return "", false
	}
	return envelope.Code, true
}

var codeParamPattern = regexp.MustCompile(`code=([^&\s"']+)`)

func parseCodeParam(trimmed string) (string, bool) {
	match := codeParamPattern.FindStringSubmatch(trimmed)
	if match == nil {
		return "", false
	}
	if unescaped, err := url.QueryUnescape(match[1]); err == nil {
		return unescaped, true
	}
	return match[1], true
}
