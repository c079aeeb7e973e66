package l10n

import (
	"fmt"
	"strconv"
	"strings"
)

// entry is a message or term parsed from a .ftl resource.
// Term ids keep their leading "-".
type entry struct {
	id    string
	value pattern
	attrs []attribute
	line  int
}

func (e *entry) isTerm() bool {
	return strings.HasPrefix(e.id, "-")
}

type attribute struct {
	name  string
	value pattern
}

type (
	pattern  []element
	element  any
	textElem string
	varRef   string
)

// msgRef references a message (or a term when id starts with "-"),
// optionally one of its attributes.
type msgRef struct {
	id   string
	attr string
}

type selectExpr struct {
	selector string
	variants []variant
	def      int
}

// variant is one branch of a select. Numeric keys such as [0] match a
// Number argument by value; identifier keys match a plural category or a
// String argument exactly.
type variant struct {
	key    string
	number bool
	value  pattern
}

var pluralCategories = []string{"zero", "one", "two", "few", "many", "other"}

// parser reads the subset of Fluent syntax used by the site resources.
type parser struct {
	src  string
	path string
	pos  int
}

func parseFTL(path string, data []byte) ([]*entry, error) {
	src := strings.ReplaceAll(string(data), "\r\n", "\n")
	src = strings.TrimPrefix(src, "\ufeff")
	p := &parser{src: src, path: path}

	var entries []*entry
	for !p.eof() {
		c := p.src[p.pos]
		switch {
		case c == '\n':
			p.pos++
		case c == '#':
			p.skipLine()
		case c == ' ':
			if !p.blankLine() {
				return nil, p.errorf("unexpected indented content")
			}
			p.skipLine()
		case c == '-' || isAlpha(c):
			e, err := p.entry()
			if err != nil {
				return nil, err
			}
			entries = append(entries, e)
		default:
			return nil, p.errorf("expected message, term or comment")
		}
	}
	return entries, nil
}

func (p *parser) entry() (*entry, error) {
	e := &entry{line: p.line()}

	prefix := ""
	if p.peek() == '-' {
		prefix = "-"
		p.pos++
	}
	id, err := p.identifier()
	if err != nil {
		return nil, err
	}
	e.id = prefix + id

	p.skipInline()
	if !p.consume('=') {
		return nil, p.errorf("expected \"=\" after %q", e.id)
	}
	p.skipInline()

	if e.value, err = p.pattern(false); err != nil {
		return nil, err
	}

	for p.attributeStart() {
		name, err := p.identifier()
		if err != nil {
			return nil, err
		}
		p.skipInline()
		if !p.consume('=') {
			return nil, p.errorf("expected \"=\" after attribute %q", name)
		}
		p.skipInline()
		value, err := p.pattern(false)
		if err != nil {
			return nil, err
		}
		if len(value) == 0 {
			return nil, p.errorf("attribute %s.%s has no value", e.id, name)
		}
		e.attrs = append(e.attrs, attribute{name: name, value: value})
	}

	if len(e.value) == 0 && (e.isTerm() || len(e.attrs) == 0) {
		return nil, fmt.Errorf("%w: %s:%d: %q has no value", ErrInvalidResource, p.path, e.line, e.id)
	}
	return e, nil
}

// pattern reads text and placeables up to the end of the pattern. A pattern
// ends at a line that is not indented or whose first character is one of
// "[", "*", "." or "}". Inside a variant a closing brace also ends it.
func (p *parser) pattern(inVariant bool) (pattern, error) {
	var (
		out  pattern
		text strings.Builder
	)
	flush := func() {
		if text.Len() > 0 {
			out = append(out, textElem(text.String()))
			text.Reset()
		}
	}

loop:
	for !p.eof() {
		switch c := p.src[p.pos]; c {
		case '{':
			flush()
			p.pos++
			el, err := p.placeable()
			if err != nil {
				return nil, err
			}
			out = append(out, el)
		case '}':
			if inVariant {
				break loop
			}
			return nil, p.errorf("unbalanced closing brace")
		case '\n':
			next, blanks, ok := p.continuation()
			if !ok {
				p.pos++
				break loop
			}
			if len(out) > 0 || text.Len() > 0 {
				text.WriteString(strings.Repeat("\n", blanks+1))
			}
			p.pos = next
		default:
			text.WriteByte(c)
			p.pos++
		}
	}
	flush()

	if n := len(out); n > 0 {
		if t, ok := out[n-1].(textElem); ok {
			trimmed := strings.TrimRight(string(t), " \t")
			if trimmed == "" {
				out = out[:n-1]
			} else {
				out[n-1] = textElem(trimmed)
			}
		}
	}
	return out, nil
}

// continuation looks past the newline at p.pos and reports where the next
// pattern line starts and how many blank lines precede it.
func (p *parser) continuation() (next, blanks int, ok bool) {
	i := p.pos + 1
	for {
		j := i
		for j < len(p.src) && p.src[j] == ' ' {
			j++
		}
		if j >= len(p.src) {
			return 0, 0, false
		}
		if p.src[j] == '\n' {
			blanks++
			i = j + 1
			continue
		}
		if j == i {
			return 0, 0, false
		}
		switch p.src[j] {
		case '[', '*', '.', '}':
			return 0, 0, false
		}
		return j, blanks, true
	}
}

// attributeStart advances past the indentation and "." of an attribute line.
func (p *parser) attributeStart() bool {
	i := p.pos
	for {
		j := i
		for j < len(p.src) && p.src[j] == ' ' {
			j++
		}
		if j >= len(p.src) {
			return false
		}
		if p.src[j] == '\n' {
			i = j + 1
			continue
		}
		if j == i || p.src[j] != '.' {
			return false
		}
		p.pos = j + 1
		return true
	}
}

func (p *parser) placeable() (element, error) {
	p.skipBlank()
	el, err := p.inlineExpression()
	if err != nil {
		return nil, err
	}
	p.skipBlank()

	if strings.HasPrefix(p.src[p.pos:], "->") {
		v, ok := el.(varRef)
		if !ok {
			return nil, p.errorf("only variables can be used as selectors")
		}
		p.pos += 2
		if el, err = p.variants(string(v)); err != nil {
			return nil, err
		}
		p.skipBlank()
	}

	if !p.consume('}') {
		return nil, p.errorf("expected \"}\"")
	}
	return el, nil
}

func (p *parser) inlineExpression() (element, error) {
	c := p.peek()
	switch {
	case c == '"':
		s, err := p.stringLiteral()
		return textElem(s), err
	case c == '$':
		p.pos++
		id, err := p.identifier()
		return varRef(id), err
	case c == '{':
		p.pos++
		return p.placeable()
	case isDigit(c) || (c == '-' && isDigit(p.peekAt(1))):
		return textElem(p.numberLiteral()), nil
	case c == '-' || isAlpha(c):
		prefix := ""
		if c == '-' {
			prefix = "-"
			p.pos++
		}
		id, err := p.identifier()
		if err != nil {
			return nil, err
		}
		ref := msgRef{id: prefix + id}
		if p.peek() == '.' && isAlpha(p.peekAt(1)) {
			p.pos++
			if ref.attr, err = p.identifier(); err != nil {
				return nil, err
			}
		}
		if p.peek() == '(' {
			return nil, p.errorf("call expressions are not supported (%s)", ref.id)
		}
		return ref, nil
	default:
		return nil, p.errorf("expected expression")
	}
}

func (p *parser) variants(selector string) (element, error) {
	sel := selectExpr{selector: selector, def: -1}
	seen := make(map[string]bool)

	for {
		p.skipBlank()
		isDefault := p.consume('*')
		if !p.consume('[') {
			if isDefault {
				return nil, p.errorf("expected \"[\" after \"*\"")
			}
			break
		}
		p.skipBlank()
		var (
			key    string
			number bool
			err    error
		)
		if isDigit(p.peek()) || (p.peek() == '-' && isDigit(p.peekAt(1))) {
			key, number = p.numberLiteral(), true
		} else if key, err = p.identifier(); err != nil {
			return nil, err
		}
		if seen[key] {
			return nil, p.errorf("duplicate variant key %q", key)
		}
		seen[key] = true
		p.skipBlank()
		if !p.consume(']') {
			return nil, p.errorf("expected \"]\"")
		}
		p.skipInline()

		value, err := p.pattern(true)
		if err != nil {
			return nil, err
		}
		if len(value) == 0 {
			return nil, p.errorf("variant [%s] has no value", key)
		}
		if isDefault {
			if sel.def >= 0 {
				return nil, p.errorf("multiple default variants")
			}
			sel.def = len(sel.variants)
		}
		sel.variants = append(sel.variants, variant{key: key, number: number, value: value})
	}

	if len(sel.variants) == 0 {
		return nil, p.errorf("select expression has no variants")
	}
	if sel.def < 0 {
		return nil, p.errorf("select expression has no default variant")
	}
	return sel, nil
}

func (p *parser) stringLiteral() (string, error) {
	p.pos++ // opening quote
	var b strings.Builder
	for !p.eof() {
		c := p.src[p.pos]
		switch c {
		case '"':
			p.pos++
			return b.String(), nil
		case '\n':
			return "", p.errorf("unterminated string literal")
		case '\\':
			p.pos++
			switch p.peek() {
			case '"', '\\':
				b.WriteByte(p.src[p.pos])
				p.pos++
			case 'u', 'U':
				size := 4
				if p.peek() == 'U' {
					size = 6
				}
				p.pos++
				if p.pos+size > len(p.src) {
					return "", p.errorf("invalid unicode escape")
				}
				r, err := strconv.ParseUint(p.src[p.pos:p.pos+size], 16, 32)
				if err != nil {
					return "", p.errorf("invalid unicode escape")
				}
				b.WriteRune(rune(r))
				p.pos += size
			default:
				return "", p.errorf("unknown escape sequence")
			}
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
	return "", p.errorf("unterminated string literal")
}

func (p *parser) numberLiteral() string {
	start := p.pos
	p.consume('-')
	for isDigit(p.peek()) {
		p.pos++
	}
	if p.peek() == '.' && isDigit(p.peekAt(1)) {
		p.pos++
		for isDigit(p.peek()) {
			p.pos++
		}
	}
	return p.src[start:p.pos]
}

func (p *parser) identifier() (string, error) {
	start := p.pos
	if !isAlpha(p.peek()) {
		return "", p.errorf("expected identifier")
	}
	for !p.eof() {
		c := p.src[p.pos]
		if !isAlpha(c) && !isDigit(c) && c != '_' && c != '-' {
			break
		}
		p.pos++
	}
	return p.src[start:p.pos], nil
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *parser) peek() byte {
	return p.peekAt(0)
}

func (p *parser) peekAt(n int) byte {
	if p.pos+n >= len(p.src) {
		return 0
	}
	return p.src[p.pos+n]
}

func (p *parser) consume(c byte) bool {
	if p.peek() == c {
		p.pos++
		return true
	}
	return false
}

func (p *parser) skipInline() {
	for p.peek() == ' ' || p.peek() == '\t' {
		p.pos++
	}
}

func (p *parser) skipBlank() {
	for {
		switch p.peek() {
		case ' ', '\t', '\n':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) skipLine() {
	if i := strings.IndexByte(p.src[p.pos:], '\n'); i >= 0 {
		p.pos += i + 1
		return
	}
	p.pos = len(p.src)
}

func (p *parser) blankLine() bool {
	rest := p.src[p.pos:]
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		rest = rest[:i]
	}
	return strings.TrimSpace(rest) == ""
}

func (p *parser) line() int {
	return strings.Count(p.src[:p.pos], "\n") + 1
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s:%d: %s", ErrInvalidResource, p.path, p.line(), fmt.Sprintf(format, args...))
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
