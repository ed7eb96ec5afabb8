package identity

import "strings"

// AllowList gates tokens by audience prefix or, failing that, email suffix.
// An empty list accepts nothing.
type AllowList struct {
	audiencePrefixes []string
	emailSuffixes    []string
}

func NewAllowList(audiencePrefixes, emailSuffixes []string) AllowList {
	return AllowList{
		audiencePrefixes: nonBlank(audiencePrefixes),
		emailSuffixes:    nonBlank(emailSuffixes),
	}
}

func (a AllowList) Permits(audience, email string) bool {
	for _, prefix := range a.audiencePrefixes {
		if strings.HasPrefix(audience, prefix) {
			return true
		}
	}
	for _, suffix := range a.emailSuffixes {
		if strings.HasSuffix(email, suffix) {
			return true
		}
	}
	return false
}

func (a AllowList) IsEmpty() bool {
	return len(a.audiencePrefixes) == 0 && len(a.emailSuffixes) == 0
}

// blank entries would match every value
func nonBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
