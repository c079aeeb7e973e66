package l10n

import (
	"context"
	"io"
)

// Param is a positional parameter of a template invocation. A non-empty
// Path marks a bare identifier reference; otherwise Value holds a literal.
type Param struct {
	Path  string
	Value any
}

// Ident returns an identifier parameter.
func Ident(name string) Param {
	return Param{Path: name}
}

// Literal returns a literal parameter.
func Literal(v any) Param {
	return Param{Value: v}
}

// IsIdent reports whether p is an identifier reference.
func (p Param) IsIdent() bool {
	return p.Path != ""
}

// Fragment is a renderable piece of a template. templ components satisfy it.
type Fragment interface {
	Render(ctx context.Context, w io.Writer) error
}

// RenderFunc renders a nested fragment to a string through the host renderer.
type RenderFunc func(Fragment) (string, error)

// Element is one node of an invocation block body.
type Element interface {
	isElement()
}

// Raw is literal template text between block nodes.
type Raw string

// Expression is a plain output expression inside a block body.
type Expression struct {
	Source string
}

// BlockHelper is a named block helper inside a block body, such as
// {{#textparam name}}...{{/textparam}}.
type BlockHelper struct {
	Name   string
	Params []Param
	Body   Fragment
}

func (Raw) isElement()         {}
func (Expression) isElement()  {}
func (BlockHelper) isElement() {}

// Block is the body of a block invocation.
type Block struct {
	Elements []Element
}

// Invocation is one parsed use of the text helper.
type Invocation struct {
	Params []Param
	Hash   Hash
	Block  *Block
}
