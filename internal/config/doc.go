// Package config loads the identity service settings.
//
// [GetStructuredConfig] reads environment variables, command-line flags
// and an optional JSON file (path from CONFIG or -c), then fills the
// remaining zero fields with built-in defaults. A value from an earlier
// source is never overwritten by a later one, so the environment beats
// flags and flags beat the file. The merged result is validated before it
// is returned.
package config
