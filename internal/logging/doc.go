// Package logging wraps log/slog with obsmark's handler selection and attr
// helpers. Console output goes to stderr; the JSON handler exists for
// machine-readable runs.
package logging
