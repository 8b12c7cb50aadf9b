//go:build debug

package debugex

// Enabled reports whether the debug channel is compiled in.
// Build with -tags debug to turn it on.
const Enabled = true
