//go:build unit

package tos_test

import (
	"testing"
	"time"

	"tos-api/internal/domain/tos"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDocumentKey(t *testing.T) {
	cases := []struct {
		name        string
		version     float64
		versionName string
	}{
		{name: "integer version", version: 1, versionName: "1"},
		{name: "fractional version", version: 1.5, versionName: "1.5"},
		{name: "large version", version: 20240501, versionName: "20240501"},
		{name: "zero", version: 0, versionName: "0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			key := tos.NewDocumentKey("test-app", tc.version)
			assert.Equal(t, tc.versionName, key.VersionName())
			assert.Equal(t, "test-app/"+tc.versionName, key.String())
			assert.Equal(t, []string{tos.KindApplication, "test-app", tos.KindTermsOfService, tc.versionName}, key.Path())
		})
	}
}

func TestNewResponse(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)
	now := time.Date(2024, 5, 1, 18, 30, 0, 123456789, jst)
	doc := tos.NewDocumentKey("test-app", 2)

	r := tos.NewResponse(doc, "uid-1", "user@example.com", true, now)

	assert.NotEqual(t, uuid.Nil, r.ID)
	assert.Equal(t, doc, r.Document)
	assert.Equal(t, "uid-1", r.UserID)
	assert.Equal(t, "user@example.com", r.Email)
	assert.True(t, r.Accepted)
	assert.Equal(t, time.UTC, r.Timestamp.Location())
	assert.True(t, r.Timestamp.Equal(time.Date(2024, 5, 1, 9, 30, 0, 123000000, time.UTC)))
}

func TestRequestInfoDocumentKey(t *testing.T) {
	info := tos.RequestInfo{AppID: "test-app", TOSVersion: 3.25}
	assert.Equal(t, tos.NewDocumentKey("test-app", 3.25), info.DocumentKey())
	assert.Nil(t, info.Accepted)
}
