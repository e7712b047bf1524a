// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package guard composes the identity checks that protect endpoints.
//
// A [Chain] runs an [Authenticator] (stage 1) followed by an ordered list
// of [Stage] checks such as [RequireActive] (stage 2) and [RequireRole]
// (stage 3). Public endpoints use no chain, mutating endpoints use stages
// 1 and 2, administrative endpoints all three. The authenticator is either
// local (the identity service's own auth service) or remote (a client that
// asks the identity service's /me endpoint), so every service in the
// deployment protects its endpoints the same way.
package guard
