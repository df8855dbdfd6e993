// Package cast converts the text content of response nodes into typed Go
// values. The conversion table is built once on first use and never changes
// afterwards, so the functions it returns are safe for concurrent use.
package cast

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/chemspider/chemspider-sdk-go/pkg/model"
	"github.com/shopspring/decimal"
)

// Func converts node text into a value.
type Func func(s string) (any, error)

// dateTimeLayouts are tried in order by the date-time cast.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

var registry = sync.OnceValue(func() map[model.Primitive]Func {
	return map[model.Primitive]Func{
		model.Boolean:  castBoolean,
		model.Integer:  castInteger,
		model.Float:    castFloat,
		model.String:   castString,
		model.DateTime: castDateTime,
		model.URI:      castURI,
		model.Decimal:  castDecimal,
	}
})

// For returns the conversion registered for target, or an
// *model.UnsupportedCastError.
func For(target model.Primitive) (Func, error) {
	fn, ok := registry()[target]
	if !ok {
		return nil, &model.UnsupportedCastError{Target: string(target)}
	}
	return fn, nil
}

// Tags lists the supported primitive targets in sorted order.
func Tags() []model.Primitive {
	tags := make([]model.Primitive, 0, len(registry()))
	for tag := range registry() {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}

// Parse resolves a textual tag such as "integer" to a supported Primitive.
func Parse(tag string) (model.Primitive, error) {
	p := model.Primitive(strings.ToLower(strings.TrimSpace(tag)))
	if _, ok := registry()[p]; !ok {
		return "", &model.UnsupportedCastError{Target: tag}
	}
	return p, nil
}

func castBoolean(s string) (any, error) {
	return strings.EqualFold(strings.TrimSpace(s), "true"), nil
}

func castInteger(s string) (any, error) {
	return leadingInt(s), nil
}

func castFloat(s string) (any, error) {
	return leadingFloat(s), nil
}

func castString(s string) (any, error) {
	return s, nil
}

func castDateTime(s string) (any, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return nil, fmt.Errorf("cannot parse %q as date-time", s)
}

func castURI(s string) (any, error) {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}
	return u, nil
}

func castDecimal(s string) (any, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}
	return d, nil
}
