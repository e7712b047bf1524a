// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// maxTraceIDLength bounds trace ids accepted from callers.
const maxTraceIDLength = 128

// TraceIDGenerator produces request trace ids.
type TraceIDGenerator func() string

// NewTraceIDGenerator returns a generator of time-ordered UUIDv7 strings. A
// random UUIDv4 is returned when the v7 source fails.
func NewTraceIDGenerator() TraceIDGenerator {
	return func() string {
		v7, err := uuid.NewV7()
		if err != nil {
			return uuid.NewString()
		}
		return v7.String()
	}
}

// TraceIDOrNew returns incoming when it is usable as a trace id, otherwise a
// fresh one from g.
func (g TraceIDGenerator) TraceIDOrNew(incoming string) string {
	if incoming == "" || len(incoming) > maxTraceIDLength {
		return g()
	}
	return incoming
}
