// Package markup is a small HTML writer used by the templ components.
// Text and format arguments are escaped; Raw is written verbatim.
package markup

import (
	"context"
	"fmt"
	"io"
	"reflect"

	"github.com/a-h/templ"
)

// Writer writes HTML and remembers the first error
type Writer struct {
	w   io.Writer
	ctx context.Context
	err error
}

// New wraps w
func New(ctx context.Context, w io.Writer) *Writer {
	return &Writer{w: w, ctx: ctx}
}

// Raw writes trusted markup
func (m *Writer) Raw(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}

// Text writes escaped text
func (m *Writer) Text(s string) {
	m.Raw(templ.EscapeString(s))
}

// Printf writes format verbatim with every string-like argument escaped.
// Numbers and other values are passed to fmt untouched.
func (m *Writer) Printf(format string, args ...any) {
	escaped := make([]any, len(args))
	for i, arg := range args {
		escaped[i] = escapeArg(arg)
	}
	m.Raw(fmt.Sprintf(format, escaped...))
}

func escapeArg(arg any) any {
	switch v := arg.(type) {
	case string:
		return templ.EscapeString(v)
	case fmt.Stringer:
		return templ.EscapeString(v.String())
	}
	if rv := reflect.ValueOf(arg); rv.IsValid() && rv.Kind() == reflect.String {
		return templ.EscapeString(rv.String())
	}
	return arg
}

// Render writes a child component
func (m *Writer) Render(c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(m.ctx, m.w)
}

// Err returns the first write or render error
func (m *Writer) Err() error {
	return m.err
}

// Component adapts a writing function to templ.Component
func Component(fn func(m *Writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := New(ctx, w)
		fn(m)
		return m.Err()
	})
}

// Attr renders name="value" when cond holds, for boolean-ish attributes
func Attr(cond bool, name string) string {
	if cond {
		return " " + name
	}
	return ""
}
