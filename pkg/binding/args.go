package binding

import (
	"net/url"

	"github.com/chemspider/chemspider-sdk-go/pkg/model"
)

// Symbol is a symbolic argument key. Named-argument maps are searched for
// Symbol(name) before the plain string name.
type Symbol string

// BindArgs normalizes call arguments into request parameters ordered like
// paramNames, and extracts a trailing addressing override.
func BindArgs(paramNames []string, args []any) (model.Params, model.Addressing) {
	var override model.Addressing
	if n := len(args); n > 0 {
		switch a := args[n-1].(type) {
		case model.Addressing:
			override = a
			args = args[:n-1]
		case *model.Addressing:
			if a != nil {
				override = *a
			}
			args = args[:n-1]
		}
	}

	if len(args) == 1 {
		if lookup, ok := keyed(args[0]); ok {
			params := make(model.Params, 0, len(paramNames))
			for _, name := range paramNames {
				if v, ok := lookup(name); ok {
					params = append(params, model.Param{Name: name, Value: v})
				}
			}
			return params, override
		}
	}

	params := make(model.Params, len(paramNames))
	for i, name := range paramNames {
		params[i] = model.Param{Name: name}
		if i < len(args) {
			params[i].Value = args[i]
		}
	}
	return params, override
}

// keyed reports whether arg is a named-argument map and returns its lookup.
func keyed(arg any) (func(name string) (any, bool), bool) {
	switch m := arg.(type) {
	case map[string]any:
		return func(name string) (any, bool) {
			v, ok := m[name]
			return v, ok
		}, true
	case map[string]string:
		return func(name string) (any, bool) {
			v, ok := m[name]
			return v, ok
		}, true
	case map[Symbol]any:
		return func(name string) (any, bool) {
			v, ok := m[Symbol(name)]
			return v, ok
		}, true
	case map[any]any:
		return func(name string) (any, bool) {
			if v, ok := m[Symbol(name)]; ok {
				return v, true
			}
			v, ok := m[name]
			return v, ok
		}, true
	case url.Values:
		return func(name string) (any, bool) {
			v, ok := m[name]
			if !ok {
				return nil, false
			}
			if len(v) == 1 {
				return v[0], true
			}
			return v, true
		}, true
	}
	return nil, false
}
