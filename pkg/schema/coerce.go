package schema

import (
	"encoding/json"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// Local part, @, domain, dot, tld. No whitespace and no second @ anywhere.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func coerceString(raw string) (string, error) {
	return raw, nil
}

func coerceNumber(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) {
		return 0, ErrInvalidNumber
	}
	return v, nil
}

func coerceBool(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, ErrInvalidBool
	}
}

// coerceURL validates the raw string parses as an absolute URL but keeps the
// original string as the resolved value. Scheme-less strings are rejected;
// url.Parse alone would accept nearly anything.
func coerceURL(raw string) (string, error) {
	u, err := url.ParseRequestURI(raw)
	if err != nil || u.Scheme == "" {
		return "", ErrInvalidURL
	}
	return raw, nil
}

func coerceEmail(raw string) (string, error) {
	if !emailPattern.MatchString(raw) {
		return "", ErrInvalidEmail
	}
	return raw, nil
}

func coerceJSON(raw string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, ErrInvalidJSON
	}
	return v, nil
}

// FormatValue renders a resolved or default value back to its raw string
// form, such that coercing the result yields the value again. Numbers use
// the shortest representation that round-trips exactly.
func FormatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
