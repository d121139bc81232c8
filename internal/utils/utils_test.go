// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	a := g.Generate()
	b := g.Generate()

	require.NotEqual(t, a, b)
	parsed, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestSystemClock_Now(t *testing.T) {
	now := NewSystemClock().Now()

	assert.Equal(t, time.UTC, now.Location())
	assert.WithinDuration(t, time.Now(), now, time.Second)
	assert.True(t, now.Equal(now.Round(0)))
}

func TestFingerprint(t *testing.T) {
	data := []byte(`{"version":1,"notes":[]}`)
	want := sha256.Sum256(data)

	assert.Equal(t, hex.EncodeToString(want[:]), Fingerprint(data))
	assert.Equal(t, Fingerprint(data), Fingerprint(data))
	assert.NotEqual(t, Fingerprint(data), Fingerprint([]byte("other")))
}

func TestNewHTTPClient(t *testing.T) {
	c := NewHTTPClient("http://localhost:9000/", 5*time.Second)

	require.NotNil(t, c.Client)
	assert.Equal(t, "http://localhost:9000", c.BaseURL)
	assert.Equal(t, "application/json", c.Header.Get("Content-Type"))

	other := NewHTTPClient("http://localhost:9000", 0)
	assert.NotSame(t, c.Client, other.Client)
}

func TestHTTPClient_WithBearer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second).WithBearer(" token ")
	_, err := c.R().Get("/")
	require.NoError(t, err)

	assert.Equal(t, "Bearer token", gotAuth)
}
