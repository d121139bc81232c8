// Package utils provides general-purpose helpers shared across the client:
// identifier generation, a UTC clock, content fingerprints and the resty
// HTTP client wrapper.
package utils
