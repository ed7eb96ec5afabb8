package validation

import (
	"encoding/json"
	"io"
	"math"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"tos-api/internal/domain/tos"
	"tos-api/internal/pkg/errs"
)

const (
	msgInvalidBody       = "Request body must be valid JSON."
	msgAcceptedNotBool   = "accepted must be a Boolean."
	msgAppIDNotString    = "appid must be a String."
	msgVersionNotNumeric = "tosversion must be a Number."
)

// upper bound on a POST body; requests carry three small fields
const maxBodyBytes = 64 << 10

var allowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}

func ValidateRequestURL(r *http.Request) error {
	if !IsUserResponsePath(r.URL.Path) {
		return errs.NotFound("")
	}
	return nil
}

func ValidateRequestMethod(r *http.Request) error {
	if !contains(allowedMethods, r.Method) {
		return errs.MethodNotAllowed("")
	}
	return nil
}

func ValidateContentType(r *http.Request) error {
	if r.Method != http.MethodPost {
		return nil
	}
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		return errs.UnsupportedMediaType("")
	}
	return nil
}

// RequireAuthorizationHeader returns the raw Authorization header of reads
// and writes. Other methods need none and get an empty string.
func RequireAuthorizationHeader(r *http.Request) (string, error) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		return "", nil
	}
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errs.Unauthorized("")
	}
	return authHeader, nil
}

// ValidateInputs extracts appid, tosversion and, for writes, accepted.
// Field errors are collected and reported together.
func ValidateInputs(r *http.Request) (tos.RequestInfo, error) {
	var (
		inputErrors []string
		appID       any
		version     any
		accepted    any
		hasAccepted bool
	)

	switch r.Method {
	case http.MethodGet:
		query := r.URL.Query()
		if values := query["appid"]; len(values) == 1 {
			appID = values[0]
		}
		version = parseFloatPrefix(query.Get("tosversion"))
	case http.MethodPost:
		body, err := decodeObject(r)
		if err != nil {
			return tos.RequestInfo{}, err
		}
		appID = body["appid"]
		version = body["tosversion"]
		accepted, hasAccepted = body["accepted"]
		if _, ok := accepted.(bool); !ok {
			inputErrors = append(inputErrors, msgAcceptedNotBool)
		}
	default:
		return tos.RequestInfo{}, errs.MethodNotAllowed("")
	}

	appIDStr, ok := appID.(string)
	if !ok {
		inputErrors = append(inputErrors, msgAppIDNotString)
	}
	versionNum, ok := version.(float64)
	if !ok || math.IsNaN(versionNum) || math.IsInf(versionNum, 0) {
		inputErrors = append(inputErrors, msgVersionNotNumeric)
	}

	if len(inputErrors) > 0 {
		return tos.RequestInfo{}, errs.BadRequest(strings.Join(inputErrors, " "))
	}

	info := tos.RequestInfo{
		AppID:      appIDStr,
		TOSVersion: versionNum,
	}
	if hasAccepted {
		b := accepted.(bool)
		info.Accepted = &b
	}
	return info, nil
}

func decodeObject(r *http.Request) (map[string]any, error) {
	if r.Body == nil {
		return nil, errs.BadRequest(msgInvalidBody)
	}
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, errs.BadRequest(msgInvalidBody)
	}
	var body any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, errs.BadRequest(msgInvalidBody)
	}
	obj, ok := body.(map[string]any)
	if !ok {
		return nil, errs.BadRequest(msgInvalidBody)
	}
	return obj, nil
}

var floatPrefix = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)

// parseFloatPrefix reads the longest leading decimal literal of s, so "2abc"
// is 2 and "abc" is NaN.
func parseFloatPrefix(s string) float64 {
	m := floatPrefix.FindString(strings.TrimLeft(s, " \t\n\r\v\f"))
	if m == "" {
		return math.NaN()
	}
	switch strings.TrimLeft(m, "+") {
	case "Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}
