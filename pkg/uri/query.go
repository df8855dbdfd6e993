// Package uri assembles request URIs for remote operations: the query
// encoder flattens ordered, possibly multi-valued parameters, and Build
// combines them with addressing options.
package uri

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/chemspider/chemspider-sdk-go/pkg/model"
)

// EncodeQuery renders params as a URL-encoded query string, preserving input
// order. Multi-valued parameters expand to one term per element; nested
// sequences are flattened. An empty result means "no query".
func EncodeQuery(params model.Params) string {
	if len(params) == 0 {
		return ""
	}
	terms := make([]string, 0, len(params))
	for _, p := range Flatten(params) {
		terms = append(terms, url.QueryEscape(p.Name)+"="+url.QueryEscape(p.Value.(string)))
	}
	return strings.Join(terms, "&")
}

// Flatten expands multi-valued parameters into scalar terms whose values are
// all strings. A nil value becomes the empty string.
func Flatten(params model.Params) model.Params {
	out := make(model.Params, 0, len(params))
	for _, p := range params {
		out = flatten(out, p.Name, p.Value)
	}
	return out
}

func flatten(out model.Params, name string, value any) model.Params {
	switch v := value.(type) {
	case nil:
		return append(out, model.Param{Name: name, Value: ""})
	case string:
		return append(out, model.Param{Name: name, Value: v})
	case []string:
		for _, s := range v {
			out = append(out, model.Param{Name: name, Value: s})
		}
		return out
	case []any:
		for _, item := range v {
			out = flatten(out, name, item)
		}
		return out
	case float64:
		return append(out, model.Param{Name: name, Value: strconv.FormatFloat(v, 'f', -1, 64)})
	case float32:
		return append(out, model.Param{Name: name, Value: strconv.FormatFloat(float64(v), 'f', -1, 32)})
	case []byte:
		return append(out, model.Param{Name: name, Value: string(v)})
	case fmt.Stringer:
		return append(out, model.Param{Name: name, Value: v.String()})
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			out = flatten(out, name, rv.Index(i).Interface())
		}
		return out
	case reflect.Pointer:
		if rv.IsNil() {
			return append(out, model.Param{Name: name, Value: ""})
		}
		return flatten(out, name, rv.Elem().Interface())
	}
	return append(out, model.Param{Name: name, Value: fmt.Sprint(value)})
}
