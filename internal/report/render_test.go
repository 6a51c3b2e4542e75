package report

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoldmarkRenderer(t *testing.T) {
	r := NewGoldmarkRenderer()

	out, err := r.Render("| a | b |\n|---|---|\n| 1 | 2 |\n")
	require.NoError(t, err)
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<td>1</td>")

	out, err = r.Render("```python\nprint(1)\n```\n")
	require.NoError(t, err)
	assert.Contains(t, out, `<pre><code class="language-python">`)

	out, err = r.Render("first line\nsecond line\n")
	require.NoError(t, err)
	assert.Contains(t, out, "first line<br>")
}

func TestLazyRendererBuildsOnce(t *testing.T) {
	builds := 0
	l := NewLazyRenderer(func() (Renderer, error) {
		builds++
		return &stubRenderer{out: "<p>x</p>"}, nil
	})
	assert.Zero(t, builds)

	for i := 0; i < 3; i++ {
		out, err := l.Render("x")
		require.NoError(t, err)
		assert.Equal(t, "<p>x</p>", out)
	}
	assert.Equal(t, 1, builds)
}

func TestLazyRendererRemembersFailure(t *testing.T) {
	boom := errors.New("not installed")
	builds := 0
	l := NewLazyRenderer(func() (Renderer, error) {
		builds++
		return nil, boom
	})

	_, err := l.Render("x")
	assert.ErrorIs(t, err, boom)
	_, err = l.Render("x")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, builds)
}
