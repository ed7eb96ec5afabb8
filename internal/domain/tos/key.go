package tos

import (
	"strconv"
)

// entity kinds, outermost first
const (
	KindApplication    = "Application"
	KindTermsOfService = "TermsOfService"
)

// DocumentKey identifies one TermsOfService version of an application. It is
// the ancestor scope of every user response to that version.
type DocumentKey struct {
	AppID   string
	Version float64
}

func NewDocumentKey(appID string, version float64) DocumentKey {
	return DocumentKey{AppID: appID, Version: version}
}

// VersionName is the key segment for the version, e.g. "1" or "1.5".
func (k DocumentKey) VersionName() string {
	return FormatVersion(k.Version)
}

// Path is the ancestor path Application/<appid>/TermsOfService/<version>.
func (k DocumentKey) Path() []string {
	return []string{KindApplication, k.AppID, KindTermsOfService, k.VersionName()}
}

func (k DocumentKey) String() string {
	return k.AppID + "/" + k.VersionName()
}

func FormatVersion(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
