package l10n

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
)

// compiled is one formattable message produced from a resource entry.
// A message with a select expression also carries one hidden message per
// variant, rendered when the selector matches that variant's key exactly
// or when the default variant applies.
type compiled struct {
	msg      *i18n.Message
	choice   *choice
	variants []*i18n.Message
	vars     []string
}

// compiler resolves message and term references within one locale and
// turns patterns into go-i18n message templates.
type compiler struct {
	path    map[string]string
	entries map[string]*entry
	active  map[string]bool
}

func newCompiler(entries map[string]*entry, paths map[string]string) *compiler {
	return &compiler{
		entries: entries,
		path:    paths,
		active:  make(map[string]bool),
	}
}

// compile returns the public messages of e: its value under e.id and every
// attribute under "id.attr". Terms produce nothing.
func (c *compiler) compile(e *entry) ([]compiled, error) {
	if e.isTerm() {
		// References from terms are still checked.
		if _, err := c.expand(e.id, e.value); err != nil {
			return nil, err
		}
		return nil, nil
	}

	var out []compiled
	if len(e.value) > 0 {
		m, err := c.message(e.id, e.id, e.value)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	for _, a := range e.attrs {
		id := e.id + "." + a.name
		m, err := c.message(id, id, a.value)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (c *compiler) message(id, key string, p pattern) (compiled, error) {
	flat, err := c.expand(key, p)
	if err != nil {
		return compiled{}, err
	}

	idx := -1
	for i, el := range flat {
		if _, ok := el.(selectExpr); ok {
			if idx >= 0 {
				return compiled{}, c.errorf(id, "only one select expression per message is supported")
			}
			idx = i
		}
	}

	msg := &i18n.Message{ID: id}
	vars := make(map[string]bool)
	if idx < 0 {
		if msg.Other, err = c.template(id, flat, vars); err != nil {
			return compiled{}, err
		}
		return compiled{msg: msg, vars: sortedKeys(vars)}, nil
	}

	sel := flat[idx].(selectExpr)
	form := func(v pattern) (string, error) {
		f := make(pattern, 0, len(flat)+len(v))
		f = append(f, flat[:idx]...)
		f = append(f, v...)
		f = append(f, flat[idx+1:]...)
		return c.template(id, f, vars)
	}

	forms := map[string]*string{
		"zero":  &msg.Zero,
		"one":   &msg.One,
		"two":   &msg.Two,
		"few":   &msg.Few,
		"many":  &msg.Many,
		"other": &msg.Other,
	}
	for _, category := range pluralCategories {
		v := sel.variants[sel.def].value
		for _, candidate := range sel.variants {
			if !candidate.number && candidate.key == category {
				v = candidate.value
				break
			}
		}
		if *forms[category], err = form(v); err != nil {
			return compiled{}, err
		}
	}

	ch := &choice{selector: sel.selector}
	variants := make([]*i18n.Message, 0, len(sel.variants))
	for i, v := range sel.variants {
		m := &i18n.Message{ID: variantID(id, v.key)}
		if m.Other, err = form(v.value); err != nil {
			return compiled{}, err
		}
		variants = append(variants, m)
		ch.keys = append(ch.keys, choiceKey{key: v.key, number: v.number, id: m.ID})
		if i == sel.def {
			ch.fallback = m.ID
		}
	}
	return compiled{msg: msg, choice: ch, variants: variants, vars: sortedKeys(vars)}, nil
}

// variantID names the hidden message holding one variant of id. Resource
// ids never contain "[", so these cannot collide with declared messages.
func variantID(id, key string) string {
	return id + "[" + key + "]"
}

// expand inlines message and term references. key identifies the pattern
// being expanded for cycle detection.
func (c *compiler) expand(key string, p pattern) (pattern, error) {
	if c.active[key] {
		return nil, c.errorf(key, "reference cycle")
	}
	c.active[key] = true
	defer delete(c.active, key)

	out := make(pattern, 0, len(p))
	for _, el := range p {
		switch el := el.(type) {
		case msgRef:
			target, ok := c.entries[el.id]
			if !ok {
				return nil, c.errorf(key, "unknown reference %q", el.id)
			}
			value, refKey := target.value, el.id
			if el.attr != "" {
				value, refKey = nil, el.id+"."+el.attr
				for _, a := range target.attrs {
					if a.name == el.attr {
						value = a.value
						break
					}
				}
			}
			if len(value) == 0 {
				return nil, c.errorf(key, "reference %q has no value", refKey)
			}
			inlined, err := c.expand(refKey, value)
			if err != nil {
				return nil, err
			}
			out = append(out, inlined...)
		case selectExpr:
			variants := make([]variant, len(el.variants))
			for i, v := range el.variants {
				value, err := c.expand(variantID(key, v.key), v.value)
				if err != nil {
					return nil, err
				}
				variants[i] = variant{key: v.key, number: v.number, value: value}
			}
			el.variants = variants
			out = append(out, el)
		default:
			out = append(out, el)
		}
	}
	return out, nil
}

// template renders a flat pattern as a text/template source and records the
// variables it reads. Literal text containing a brace is quoted into an
// action of its own, since neighbouring pieces may join into a delimiter.
func (c *compiler) template(id string, p pattern, vars map[string]bool) (string, error) {
	var b strings.Builder
	for _, el := range p {
		switch el := el.(type) {
		case textElem:
			if strings.ContainsAny(string(el), "{}") {
				b.WriteString("{{" + strconv.Quote(string(el)) + "}}")
			} else {
				b.WriteString(string(el))
			}
		case varRef:
			vars[string(el)] = true
			b.WriteString(`{{arg . "` + string(el) + `"}}`)
		case selectExpr:
			return "", c.errorf(id, "nested select expressions are not supported")
		default:
			return "", c.errorf(id, "unexpected element %T", el)
		}
	}
	return b.String(), nil
}

func (c *compiler) errorf(key, format string, args ...any) error {
	id := key
	if i := strings.IndexAny(id, ".["); i > 0 {
		id = id[:i]
	}
	return fmt.Errorf("%w: %s: %s: %s", ErrInvalidResource, c.path[id], key, fmt.Sprintf(format, args...))
}

func sortedKeys(m map[string]bool) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
