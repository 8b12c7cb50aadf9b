//go:build !windows

package debugex

const lineTerminator = "\n"
