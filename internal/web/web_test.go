package web

import (
	"bytes"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTemplatesParse(t *testing.T) {
	t.Parallel()

	tmpl, err := Templates()
	require.NoError(t, err)
	for _, name := range []string{"base.html", "modal.html", "catalog", "carousel", "scheduler", "contact", "footer", "profile"} {
		require.NotNil(t, tmpl.Lookup(name), name)
	}

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "contact", map[string]string{"Action": "/contato", "Placeholder": "x"}))
	require.Contains(t, buf.String(), `target="_blank"`)
}

func TestStaticFiles(t *testing.T) {
	t.Parallel()

	_, err := fs.Stat(Static(), "carousel.js")
	require.NoError(t, err)
	_, err = fs.Stat(Static(), "site.css")
	require.NoError(t, err)
}
