package l10n

import (
	"encoding/json"
	"strconv"
)

// Value is a localization argument. It is either a Number or a String.
type Value interface {
	isValue()
}

// Number is a numeric argument kept in its decimal string form so that
// formatting never goes through a float round-trip.
type Number string

// String is a plain text argument.
type String string

func (Number) isValue() {}
func (String) isValue() {}

// Args maps argument names to values for a single formatting call.
// A nil Args means the invocation carried no arguments.
type Args map[string]Value

// Hash holds the raw keyword arguments of a template invocation.
type Hash map[string]any

// ValueOf converts a scalar into an argument value. Numbers become Number,
// strings become String. Every other type reports false and is dropped by
// the binder.
func ValueOf(v any) (Value, bool) {
	switch n := v.(type) {
	case string:
		return String(n), true
	case int:
		return Number(strconv.FormatInt(int64(n), 10)), true
	case int8:
		return Number(strconv.FormatInt(int64(n), 10)), true
	case int16:
		return Number(strconv.FormatInt(int64(n), 10)), true
	case int32:
		return Number(strconv.FormatInt(int64(n), 10)), true
	case int64:
		return Number(strconv.FormatInt(n, 10)), true
	case uint:
		return Number(strconv.FormatUint(uint64(n), 10)), true
	case uint8:
		return Number(strconv.FormatUint(uint64(n), 10)), true
	case uint16:
		return Number(strconv.FormatUint(uint64(n), 10)), true
	case uint32:
		return Number(strconv.FormatUint(uint64(n), 10)), true
	case uint64:
		return Number(strconv.FormatUint(n, 10)), true
	case float32:
		return Number(strconv.FormatFloat(float64(n), 'f', -1, 32)), true
	case float64:
		return Number(strconv.FormatFloat(n, 'f', -1, 64)), true
	case json.Number:
		return Number(n.String()), true
	default:
		return nil, false
	}
}

// templateData flattens args into the data handed to the message templates.
func templateData(args Args) map[string]any {
	data := make(map[string]any, len(args))
	for name, v := range args {
		switch v := v.(type) {
		case Number:
			data[name] = string(v)
		case String:
			data[name] = string(v)
		default:
			panic("l10n: unknown argument value type")
		}
	}
	return data
}
