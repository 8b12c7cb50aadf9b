package debugex

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func currentLine() int {
	_, _, line, _ := runtime.Caller(1)
	return line
}

func TestCaller(t *testing.T) {
	ctx, line := Caller(0), currentLine()

	assert.Equal(t, "TestCaller", ctx.Member)
	assert.Equal(t, "caller_test.go", filepath.Base(ctx.FilePath))
	assert.Equal(t, line, ctx.Line)
}

func callerOfHelper() (string, int) {
	ctx := Caller(1)
	return ctx.Member, ctx.Line
}

func TestCallerSkip(t *testing.T) {
	member, got := callerOfHelper()
	want := currentLine() - 1

	assert.Equal(t, "TestCallerSkip", member)
	assert.Equal(t, want, got)
}

func TestCallerOutOfRange(t *testing.T) {
	ctx := Caller(1000)

	assert.Empty(t, ctx.Member)
	assert.Empty(t, ctx.FilePath)
	assert.Zero(t, ctx.Line)
}

func TestMemberName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"main", "main.main", "main"},
		{"function", "github.com/chrisreddington/debugex/internal/debugex.TestCaller", "TestCaller"},
		{"pointer method", "github.com/a/b/pkg.(*Server).Handle", "(*Server).Handle"},
		{"value method", "example.com/x.T.String", "T.String"},
		{"closure", "github.com/a/b/pkg.Run.func1", "Run.func1"},
		{"escaped dot in path", "gopkg.in/yaml%2ev3.Marshal", "Marshal"},
		{"no package", "anonymous", "anonymous"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, memberName(tt.input))
		})
	}
}
