// Package rest performs one remote operation call: it builds the request
// URI, hands it to the transport, parses the body and maps the document onto
// the operation's response shape.
package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/chemspider/chemspider-sdk-go/pkg/mapper"
	"github.com/chemspider/chemspider-sdk-go/pkg/model"
	"github.com/chemspider/chemspider-sdk-go/pkg/transport"
	"github.com/chemspider/chemspider-sdk-go/pkg/uri"
	"github.com/chemspider/chemspider-sdk-go/pkg/xmldoc"
	"go.uber.org/zap"
)

// Invoker executes operation calls over a Transport. It holds no per-call
// state and is safe for concurrent use when its collaborators are.
type Invoker struct {
	Transport transport.Transport
	Parser    model.DocumentParser
}

// NewInvoker returns an Invoker using t. A nil parser selects the XML
// document parser.
func NewInvoker(t transport.Transport, parser model.DocumentParser) *Invoker {
	if parser == nil {
		parser = xmldoc.NewParser()
	}
	return &Invoker{Transport: t, Parser: parser}
}

// Get sends params in the query string of a GET request.
func (inv *Invoker) Get(ctx context.Context, service, operation string, params model.Params, a model.Addressing, shape model.Shape) (any, error) {
	u, err := uri.Build(service, operation, params, a)
	if err != nil {
		return nil, err
	}
	body, err := inv.Transport.Fetch(ctx, u)
	if err != nil {
		return nil, &model.TransportError{Method: http.MethodGet, URI: u.String(), Err: err}
	}
	return inv.decode(u, body, shape)
}

// Post sends params as a form-encoded body. The URI carries only the
// addressing's explicit query, if any.
func (inv *Invoker) Post(ctx context.Context, service, operation string, params model.Params, a model.Addressing, shape model.Shape) (any, error) {
	u, err := uri.Build(service, operation, nil, a)
	if err != nil {
		return nil, err
	}
	body, err := inv.Transport.Submit(ctx, u, params)
	if err != nil {
		return nil, &model.TransportError{Method: http.MethodPost, URI: u.String(), Err: err}
	}
	return inv.decode(u, body, shape)
}

func (inv *Invoker) decode(u *url.URL, body []byte, shape model.Shape) (any, error) {
	root, err := inv.Parser.Parse(body)
	if err != nil {
		zap.L().Debug("unparsable response", zap.String("url", u.String()), zap.Error(err))
		return nil, &model.MalformedResponseError{URI: u.String(), Err: err}
	}
	return mapper.Extract(root, shape)
}
