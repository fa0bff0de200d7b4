package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHTML(t *testing.T) {
	r := NewRenderer()

	out, err := r.RenderHTML("Remote staff lose the **VPN** tunnel.\n\n- macOS\n- Windows")
	require.NoError(t, err)
	assert.Contains(t, out, "<strong>VPN</strong>")
	assert.Contains(t, out, "<li>macOS</li>")

	empty, err := r.RenderHTML("")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRenderHTML_StripsScripts(t *testing.T) {
	out, err := NewRenderer().RenderHTML("hello <script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "hello")
}

func TestStripTags(t *testing.T) {
	assert.Equal(t, "bold text", NewRenderer().StripTags("<b>bold</b> text"))
}
