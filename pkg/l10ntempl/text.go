package l10ntempl

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/Lsnsh/www.rust-lang.org/pkg/l10n"
	"github.com/Lsnsh/www.rust-lang.org/pkg/sanitizer"
)

// HTML is an argument value that may contain inline formatting markup.
type HTML string

// Text renders the message described by inv in the locale of the render
// context. Binding errors fail the render.
func Text(inv l10n.Invocation) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		loc := l10n.MustLocale(ctx)
		f := l10n.MustFormatter(ctx)

		id, args, err := l10n.Bind(sanitize(inv), renderWith(ctx))
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, f.Format(loc, id, args))
		return err
	})
}

// T renders message id with the merged hashes as arguments.
func T(id string, hash ...l10n.Hash) templ.Component {
	return Text(l10n.Invocation{
		Params: []l10n.Param{l10n.Ident(id)},
		Hash:   merge(hash),
	})
}

// Block renders message id with hash and the given textparam elements.
func Block(id string, hash l10n.Hash, params ...l10n.Element) templ.Component {
	return Text(l10n.Invocation{
		Params: []l10n.Param{l10n.Ident(id)},
		Hash:   hash,
		Block:  &l10n.Block{Elements: params},
	})
}

// Param is a textparam element whose value is the rendered body.
func Param(name string, body templ.Component) l10n.Element {
	p := l10n.BlockHelper{
		Name:   l10n.ParamHelper,
		Params: []l10n.Param{l10n.Ident(name)},
	}
	if body != nil {
		p.Body = body
	}
	return p
}

// String formats message id for attributes and other plain-text positions.
// Arguments are not sanitized; the caller escapes the result. Binding
// errors are returned like Text returns them from Render.
func String(ctx context.Context, id string, hash ...l10n.Hash) (string, error) {
	id, args, err := l10n.Bind(l10n.Invocation{
		Params: []l10n.Param{l10n.Ident(id)},
		Hash:   merge(hash),
	}, nil)
	if err != nil {
		return "", err
	}
	return l10n.MustFormatter(ctx).Format(l10n.MustLocale(ctx), id, args), nil
}

func renderWith(ctx context.Context) l10n.RenderFunc {
	return func(f l10n.Fragment) (string, error) {
		var b strings.Builder
		if err := f.Render(ctx, &b); err != nil {
			return "", err
		}
		return b.String(), nil
	}
}

// sanitize returns a copy of inv whose string arguments are safe to
// interpolate into HTML.
func sanitize(inv l10n.Invocation) l10n.Invocation {
	if len(inv.Hash) == 0 {
		return inv
	}
	hash := make(l10n.Hash, len(inv.Hash))
	for k, v := range inv.Hash {
		switch v := v.(type) {
		case string:
			hash[k] = sanitizer.StripHTML(v)
		case HTML:
			hash[k] = sanitizer.SanitizeHTML(string(v))
		default:
			hash[k] = v
		}
	}
	inv.Hash = hash
	return inv
}

func merge(hashes []l10n.Hash) l10n.Hash {
	switch len(hashes) {
	case 0:
		return nil
	case 1:
		return hashes[0]
	}
	out := make(l10n.Hash)
	for _, h := range hashes {
		for k, v := range h {
			out[k] = v
		}
	}
	return out
}
