package l10n

import (
	"fmt"
	"strings"
)

// Helper names recognized by Bind.
const (
	TextHelper  = "text"
	ParamHelper = "textparam"
)

// Bind extracts the message id and arguments of inv.
//
// The first parameter must be an identifier naming the message. Hash values
// become arguments when they are numbers or strings; other values are
// dropped. Every textparam element of the block body is rendered once with
// render and stored as a String under its identifier, replacing an inline
// value of the same name. A block always yields a non-nil Args.
func Bind(inv Invocation, render RenderFunc) (string, Args, error) {
	if len(inv.Params) == 0 {
		return "", nil, &BindError{Helper: TextHelper, Reason: "must have at least one parameter"}
	}
	id := inv.Params[0]
	if !id.IsIdent() {
		return "", nil, &BindError{Helper: TextHelper, Reason: "takes an identifier parameter"}
	}

	var args Args
	if len(inv.Hash) > 0 {
		args = make(Args, len(inv.Hash))
		for name, raw := range inv.Hash {
			if v, ok := ValueOf(raw); ok {
				args[name] = v
			}
		}
	}

	if inv.Block == nil {
		return id.Path, args, nil
	}
	if args == nil {
		args = make(Args)
	}

	for _, el := range inv.Block.Elements {
		switch el := el.(type) {
		case Raw:
			if strings.TrimSpace(string(el)) != "" {
				return "", nil, &BindError{Helper: TextHelper, Reason: "can only contain {{textparam}} elements, not text"}
			}
		case BlockHelper:
			if el.Name != ParamHelper {
				return "", nil, &BindError{
					Helper: TextHelper,
					Reason: fmt.Sprintf("can only contain {{textparam}} elements, not %s", el.Name),
				}
			}
			if len(el.Params) != 1 {
				return "", nil, &BindError{Helper: ParamHelper, Reason: "must have one parameter"}
			}
			if !el.Params[0].IsIdent() {
				return "", nil, &BindError{Helper: ParamHelper, Reason: "takes an identifier parameter"}
			}
			if el.Body == nil {
				continue
			}
			out, err := render(el.Body)
			if err != nil {
				return "", nil, fmt.Errorf("l10n: render textparam %s: %w", el.Params[0].Path, err)
			}
			args[el.Params[0].Path] = String(out)
		default:
			return "", nil, &BindError{
				Helper: TextHelper,
				Reason: fmt.Sprintf("can only contain {{textparam}} elements, not %T", el),
			}
		}
	}
	return id.Path, args, nil
}
