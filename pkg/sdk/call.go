package sdk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/chemspider/chemspider-sdk-go/pkg/model"
	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// TokenParam is the parameter filled from Config.Token.
const TokenParam = "token"

// Call invokes service.operation with GET or POST (method is case
// insensitive). args follow the binding calling conventions.
func (c *Core) Call(ctx context.Context, method, service, operation string, args ...any) (any, error) {
	b, err := c.Operation(service, operation)
	if err != nil {
		return nil, err
	}
	switch strings.ToUpper(method) {
	case "", http.MethodGet:
		return b.Get(ctx, args...)
	case http.MethodPost:
		return b.Post(ctx, args...)
	default:
		return nil, fmt.Errorf("unsupported method %q", method)
	}
}

// CallWithMap invokes service.operation with named parameters. The configured
// token is supplied when the operation declares a token parameter missing
// from params. The result is rendered into JSON-compatible values under the
// "result" key.
func (c *Core) CallWithMap(ctx context.Context, method, service, operation string, params map[string]any) (map[string]any, error) {
	b, err := c.Operation(service, operation)
	if err != nil {
		return nil, err
	}
	named := make(map[string]any, len(params)+1)
	for k, v := range params {
		named[k] = v
	}
	if c.Token != "" {
		if _, ok := named[TokenParam]; !ok {
			for _, p := range b.ParamNames() {
				if p == TokenParam {
					named[TokenParam] = c.Token
					break
				}
			}
		}
	}

	res, err := c.Call(ctx, method, service, operation, named)
	if err != nil {
		return nil, err
	}
	v, err := Render(res)
	if err != nil {
		return nil, err
	}
	return map[string]any{"result": v.AsInterface()}, nil
}

// CallWithJSON invokes service.operation with parameters taken from a JSON
// object and returns the rendered result as JSON, with proto field names and
// unpopulated fields emitted.
func (c *Core) CallWithJSON(ctx context.Context, method, service, operation string, input []byte) ([]byte, error) {
	in := &structpb.Struct{}
	if len(strings.TrimSpace(string(input))) > 0 {
		err := protojson.UnmarshalOptions{
			AllowPartial:   true,
			DiscardUnknown: true,
		}.Unmarshal(input, in)
		if err != nil {
			return nil, fmt.Errorf("decode input: %w", err)
		}
	}

	out, err := c.CallWithMap(ctx, method, service, operation, in.AsMap())
	if err != nil {
		return nil, err
	}
	msg, err := structpb.NewStruct(out)
	if err != nil {
		return nil, err
	}
	return protojson.MarshalOptions{
		EmitUnpopulated: true,
		UseProtoNames:   true,
	}.Marshal(msg)
}

// Render converts an operation result into a structpb.Value. Times are
// rendered as RFC 3339 strings, URLs and decimals as strings, records as
// objects and other structs through their JSON encoding.
func Render(v any) (*structpb.Value, error) {
	plain, err := plainValue(v)
	if err != nil {
		return nil, err
	}
	return structpb.NewValue(plain)
}

func plainValue(v any) (any, error) {
	switch x := v.(type) {
	case nil, bool, string, int, int32, int64, uint, uint32, uint64, float32, float64:
		return x, nil
	case time.Time:
		return x.Format(time.RFC3339Nano), nil
	case *url.URL:
		if x == nil {
			return nil, nil
		}
		return x.String(), nil
	case decimal.Decimal:
		return x.String(), nil
	case model.Record:
		return plainMap(x)
	case map[string]any:
		return plainMap(x)
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			p, err := plainValue(item)
			if err != nil {
				return nil, err
			}
			out[i] = p
		}
		return out, nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("render %T: %w", v, err)
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("render %T: %w", v, err)
	}
	return out, nil
}

func plainMap(m map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(m))
	for k, item := range m {
		p, err := plainValue(item)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		out[k] = p
	}
	return out, nil
}
