package l10n

import (
	"fmt"
	"slices"
	"strconv"
	"text/template"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// CountArg is the argument that selects the plural form of catalog
// (.toml, .yaml, .json) messages that define plural forms.
const CountArg = "count"

var templateFuncs = template.FuncMap{
	"arg": arg,
}

// arg reads a formatting argument. Unknown names render as "{$name}".
func arg(data any, name string) string {
	if m, ok := data.(map[string]any); ok {
		if v, ok := m[name]; ok {
			return fmt.Sprint(v)
		}
	}
	return "{$" + name + "}"
}

// choice records how the selector argument of a message picks what to
// render. A Number equal to a numeric key or a String equal to an
// identifier key picks that key's message; any other Number picks a plural
// form of the message itself; anything else renders fallback.
type choice struct {
	selector string
	keys     []choiceKey
	fallback string
}

type choiceKey struct {
	key    string
	number bool
	id     string
}

// pick returns the message id to render for args and the plural count to
// render it with, if any.
func (ch *choice) pick(id string, args Args) (string, any, error) {
	switch v := args[ch.selector].(type) {
	case Number:
		if n, err := strconv.ParseFloat(string(v), 64); err == nil {
			for _, k := range ch.keys {
				if !k.number {
					continue
				}
				if kn, err := strconv.ParseFloat(k.key, 64); err == nil && kn == n {
					return k.id, nil, nil
				}
			}
		}
		return id, string(v), nil
	case String:
		for _, k := range ch.keys {
			if !k.number && k.key == string(v) {
				return k.id, nil, nil
			}
		}
		return ch.fallback, nil, nil
	default:
		return ch.fallback, nil, fmt.Errorf("l10n: %s: missing selector $%s", id, ch.selector)
	}
}

// Bundle holds the compiled messages of exactly one locale.
type Bundle struct {
	locale    Locale
	localizer *i18n.Localizer
	ids       map[string]struct{}
	choices   map[string]*choice
	vars      map[string][]string
}

// newBundle compiles the documents of one locale in sequence order.
func newBundle(loc Locale, set ResourceSet) (*Bundle, error) {
	tag, err := language.Parse(string(loc))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidLocale, loc, err)
	}

	b := &Bundle{
		locale:    loc,
		ids:       make(map[string]struct{}),
		choices:   make(map[string]*choice),
		vars:      make(map[string][]string),
	}

	entries := make(map[string]*entry)
	paths := make(map[string]string)
	declare := func(id, path string) error {
		if prev, dup := paths[id]; dup {
			return fmt.Errorf("%w: %s: %q already defined in %s", ErrDuplicateMessage, path, id, prev)
		}
		paths[id] = path
		return nil
	}

	for _, res := range set {
		for _, e := range res.entries {
			if err := declare(e.id, res.Path); err != nil {
				return nil, err
			}
			for _, a := range e.attrs {
				if err := declare(e.id+"."+a.name, res.Path); err != nil {
					return nil, err
				}
			}
			entries[e.id] = e
		}
		for _, m := range res.messages {
			if err := declare(m.ID, res.Path); err != nil {
				return nil, err
			}
		}
	}

	var msgs, hidden []*i18n.Message
	c := newCompiler(entries, paths)
	for _, res := range set {
		for _, e := range res.entries {
			out, err := c.compile(e)
			if err != nil {
				return nil, err
			}
			for _, m := range out {
				msgs = append(msgs, m.msg)
				hidden = append(hidden, m.variants...)
				if m.choice != nil {
					b.choices[m.msg.ID] = m.choice
				}
				if len(m.vars) > 0 {
					b.vars[m.msg.ID] = m.vars
				}
			}
		}
		for _, m := range res.messages {
			msgs = append(msgs, m)
			if m.Zero != "" || m.One != "" || m.Two != "" || m.Few != "" || m.Many != "" {
				b.choices[m.ID] = &choice{selector: CountArg, fallback: m.ID}
			}
		}
	}

	for _, m := range hidden {
		if prev, dup := paths[m.ID]; dup {
			return nil, fmt.Errorf("%w: %q already defined in %s", ErrDuplicateMessage, m.ID, prev)
		}
	}
	for _, m := range msgs {
		b.ids[m.ID] = struct{}{}
	}

	bundle := i18n.NewBundle(tag)
	if all := slices.Concat(msgs, hidden); len(all) > 0 {
		if err := bundle.AddMessages(tag, all...); err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidLocale, loc, err)
		}
	}
	b.localizer = i18n.NewLocalizer(bundle, tag.String())
	return b, nil
}

// Locale returns the locale the bundle is scoped to.
func (b *Bundle) Locale() Locale {
	return b.locale
}

// Has reports whether the bundle defines id.
func (b *Bundle) Has(id string) bool {
	_, ok := b.ids[id]
	return ok
}

// IDs returns the sorted message ids of the bundle.
func (b *Bundle) IDs() []string {
	ids := make([]string, 0, len(b.ids))
	for id := range b.ids {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Format renders id with args. The returned errors describe recoverable
// problems such as missing variables; the string is usable regardless.
func (b *Bundle) Format(id string, args Args) (string, []error) {
	var errs []error
	for _, name := range b.vars[id] {
		if _, ok := args[name]; !ok {
			errs = append(errs, fmt.Errorf("l10n: %s: unknown variable $%s", id, name))
		}
	}

	cfg := &i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: templateData(args),
		Funcs:        templateFuncs,
	}
	if ch, ok := b.choices[id]; ok {
		msgID, count, err := ch.pick(id, args)
		if err != nil {
			errs = append(errs, err)
		}
		cfg.MessageID, cfg.PluralCount = msgID, count
	}

	out, err := b.localizer.Localize(cfg)
	if err != nil && cfg.PluralCount != nil {
		errs = append(errs, err)
		cfg.PluralCount = nil
		out, err = b.localizer.Localize(cfg)
	}
	if err != nil {
		errs = append(errs, err)
	}
	return out, errs
}
