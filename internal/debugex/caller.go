package debugex

import (
	"runtime"
	"strings"

	"github.com/chrisreddington/debugex/internal/types"
)

// Caller returns the call site skip frames above the function calling Caller.
// Caller(0) identifies the function that called Caller. If the frame cannot be
// resolved the zero CallerContext is returned.
func Caller(skip int) types.CallerContext {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return types.CallerContext{}
	}

	var member string
	if fn := runtime.FuncForPC(pc); fn != nil {
		member = memberName(fn.Name())
	}

	return types.CallerContext{
		Member:   member,
		FilePath: file,
		Line:     line,
	}
}

// memberName strips the import path and package name from a runtime function
// name, so "github.com/a/b/pkg.(*T).Method" becomes "(*T).Method".
func memberName(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}
