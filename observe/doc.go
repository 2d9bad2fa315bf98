// SPDX-License-Identifier: MIT

// Package observe carries the ambient instrumentation around searches:
// slog logger construction, Prometheus metrics, OpenTelemetry spans, and a
// store wrapper that counts vertex lookups.
//
// The search packages themselves stay silent and synchronous; callers such
// as the batch runner and the CLI wrap each search with these helpers.
package observe
