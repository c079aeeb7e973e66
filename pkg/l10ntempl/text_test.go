package l10ntempl_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"testing/fstest"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/require"

	"github.com/Lsnsh/www.rust-lang.org/pkg/l10n"
	"github.com/Lsnsh/www.rust-lang.org/pkg/l10ntempl"
)

func renderContext(t *testing.T, loc l10n.Locale) context.Context {
	t.Helper()
	reg, err := l10n.Open(fstest.MapFS{
		"en-US/main.ftl": {Data: []byte(
			"greeting = Hello, { $name }!\n" +
				"credit = Built by { $team } with { $count } contributors\n" +
				"title = Welcome { $name }\n",
		)},
		"fr/main.ftl": {Data: []byte("greeting = Bonjour, { $name } !\n")},
	})
	require.NoError(t, err)

	ctx := l10n.WithLocale(context.Background(), loc)
	return l10n.WithFormatter(ctx, l10n.NewFormatter(reg))
}

func render(t *testing.T, ctx context.Context, c templ.Component) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := c.Render(ctx, &buf)
	return buf.String(), err
}

func link(href, text string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<a href="`+templ.EscapeString(href)+`">`+templ.EscapeString(text)+`</a>`)
		return err
	})
}

func TestText(t *testing.T) {
	t.Parallel()

	t.Run("inline arguments", func(t *testing.T) {
		t.Parallel()
		out, err := render(t, renderContext(t, "en-US"), l10ntempl.T("greeting", l10n.Hash{"name": "Ada"}))
		require.NoError(t, err)
		require.Equal(t, "Hello, Ada!", out)
	})

	t.Run("uses locale from context", func(t *testing.T) {
		t.Parallel()
		out, err := render(t, renderContext(t, "fr"), l10ntempl.T("greeting", l10n.Hash{"name": "Ada"}))
		require.NoError(t, err)
		require.Equal(t, "Bonjour, Ada !", out)
	})

	t.Run("falls back to default locale", func(t *testing.T) {
		t.Parallel()
		out, err := render(t, renderContext(t, "fr"), l10ntempl.T("title", l10n.Hash{"name": "Ada"}))
		require.NoError(t, err)
		require.Equal(t, "Welcome Ada", out)
	})

	t.Run("merges hashes", func(t *testing.T) {
		t.Parallel()
		out, err := render(t, renderContext(t, "en-US"),
			l10ntempl.T("credit", l10n.Hash{"team": "the team"}, l10n.Hash{"count": 42}))
		require.NoError(t, err)
		require.Equal(t, "Built by the team with 42 contributors", out)
	})

	t.Run("strips markup from string arguments", func(t *testing.T) {
		t.Parallel()
		out, err := render(t, renderContext(t, "en-US"),
			l10ntempl.T("greeting", l10n.Hash{"name": `<script>alert(1)</script>Ada & Bob`}))
		require.NoError(t, err)
		require.Equal(t, "Hello, Ada &amp; Bob!", out)
	})

	t.Run("keeps inline formatting of HTML arguments", func(t *testing.T) {
		t.Parallel()
		out, err := render(t, renderContext(t, "en-US"),
			l10ntempl.T("greeting", l10n.Hash{"name": l10ntempl.HTML(`<strong onclick="x()">Ada</strong>`)}))
		require.NoError(t, err)
		require.Equal(t, "Hello, <strong>Ada</strong>!", out)
	})

	t.Run("nested component arguments", func(t *testing.T) {
		t.Parallel()
		out, err := render(t, renderContext(t, "en-US"), l10ntempl.Block("credit",
			l10n.Hash{"team": "ignored", "count": 3},
			l10ntempl.Param("team", link("https://example.com/team", "the team")),
		))
		require.NoError(t, err)
		require.Equal(t, `Built by <a href="https://example.com/team">the team</a> with 3 contributors`, out)
	})

	t.Run("missing message renders placeholder", func(t *testing.T) {
		t.Parallel()
		out, err := render(t, renderContext(t, "fr"), l10ntempl.T("nope"))
		require.NoError(t, err)
		require.Equal(t, "Unknown localization nope", out)
	})

	t.Run("binding error fails the render", func(t *testing.T) {
		t.Parallel()
		_, err := render(t, renderContext(t, "en-US"), l10ntempl.Text(l10n.Invocation{
			Params: []l10n.Param{l10n.Literal("greeting")},
		}))
		require.ErrorIs(t, err, l10n.ErrInvocation)
	})

	t.Run("nested render error fails the render", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		failing := templ.ComponentFunc(func(context.Context, io.Writer) error { return boom })
		_, err := render(t, renderContext(t, "en-US"), l10ntempl.Block("credit", nil, l10ntempl.Param("team", failing)))
		require.ErrorIs(t, err, boom)
	})

	t.Run("missing locale panics", func(t *testing.T) {
		t.Parallel()
		require.Panics(t, func() {
			_, _ = render(t, context.Background(), l10ntempl.T("greeting"))
		})
	})
}

func TestString(t *testing.T) {
	t.Parallel()

	ctx := renderContext(t, "en-US")
	out, err := l10ntempl.String(ctx, "title", l10n.Hash{"name": "<Ada>"})
	require.NoError(t, err)
	require.Equal(t, "Welcome <Ada>", out)

	out, err = l10ntempl.String(ctx, "nope")
	require.NoError(t, err)
	require.Equal(t, "Unknown localization nope", out)

	out, err = l10ntempl.String(ctx, "")
	var bindErr *l10n.BindError
	require.ErrorAs(t, err, &bindErr)
	require.Empty(t, out)
}
