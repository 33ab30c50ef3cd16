package markup

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestPrintfEscapesArguments(t *testing.T) {
	out := render(t, Component(func(m *Writer) {
		m.Printf(`<a href="%s">%s</a> %d`, `/x?a=1&b="2"`, "<b>bold</b>", 7)
	}))

	assert.Equal(t, `<a href="/x?a=1&amp;b=&#34;2&#34;">&lt;b&gt;bold&lt;/b&gt;</a> 7`, out)
}

type tag string

func TestPrintfKeepsNumbersAndEscapesNamedStrings(t *testing.T) {
	out := render(t, Component(func(m *Writer) {
		m.Printf(`%.1f|%d%%|%s|%t`, 4.9, 92, tag("<x>"), true)
	}))

	assert.Equal(t, `4.9|92%|&lt;x&gt;|true`, out)
}

func TestTextAndRaw(t *testing.T) {
	out := render(t, Component(func(m *Writer) {
		m.Raw("<p>")
		m.Text("Tom & Jerry")
		m.Raw("</p>")
	}))

	assert.Equal(t, "<p>Tom &amp; Jerry</p>", out)
}

func TestRenderNestsComponents(t *testing.T) {
	inner := Component(func(m *Writer) { m.Raw("<i>inner</i>") })
	out := render(t, Component(func(m *Writer) {
		m.Raw("<div>")
		m.Render(inner)
		m.Render(nil)
		m.Raw("</div>")
	}))

	assert.Equal(t, "<div><i>inner</i></div>", out)
}

func TestFirstErrorStopsWriting(t *testing.T) {
	failing := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return errors.New("render failed")
	})
	var buf bytes.Buffer
	err := Component(func(m *Writer) {
		m.Raw("a")
		m.Render(failing)
		m.Raw("b")
	}).Render(context.Background(), &buf)

	require.EqualError(t, err, "render failed")
	assert.Equal(t, "a", buf.String())
}

func TestAttr(t *testing.T) {
	assert.Equal(t, " checked", Attr(true, "checked"))
	assert.Empty(t, Attr(false, "checked"))
}
