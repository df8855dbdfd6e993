// Package sdk exposes the high-level ChemSpider SDK entry points. It wires
// together configuration, the HTTP transport, the XML response parser and the
// binding namespace holding every declared operation.
package sdk

import (
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/chemspider/chemspider-sdk-go/pkg/binding"
	"github.com/chemspider/chemspider-sdk-go/pkg/catalog"
	"github.com/chemspider/chemspider-sdk-go/pkg/chemspider"
	"github.com/chemspider/chemspider-sdk-go/pkg/config"
	"github.com/chemspider/chemspider-sdk-go/pkg/model"
	"github.com/chemspider/chemspider-sdk-go/pkg/rest"
	"github.com/chemspider/chemspider-sdk-go/pkg/transport"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// ErrUnknownOperation is returned for (service, operation) pairs that were
// never defined.
var ErrUnknownOperation = errors.New("unknown operation")

// logLevel follows Config.Debug of the most recently created Core.
var logLevel = zap.NewAtomicLevelAt(zap.InfoLevel)

// init configures a default global zap logger for the SDK. Applications may
// replace it with zap.ReplaceGlobals(...) if they need custom logging.
func init() {
	c := zap.Config{
		Level:            logLevel,
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := c.Build()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
}

// Option customizes NewSDK.
type Option func(*options)

type options struct {
	client     transport.HTTPDoer
	transport  transport.Transport
	registerer prometheus.Registerer
	parser     model.DocumentParser
}

// WithHTTPClient sends requests through client instead of an *http.Client
// built from the configured timeouts.
func WithHTTPClient(client transport.HTTPDoer) Option {
	return func(o *options) { o.client = client }
}

// WithTransport replaces the HTTP transport entirely. WithHTTPClient is
// ignored when it is set.
func WithTransport(t transport.Transport) Option {
	return func(o *options) { o.transport = t }
}

// WithRegisterer records request metrics in reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) { o.registerer = reg }
}

// WithParser replaces the XML document parser.
func WithParser(p model.DocumentParser) Option {
	return func(o *options) { o.parser = p }
}

// Core is the SDK implementation. It embeds the validated configuration.
type Core struct {
	*config.Config
	ns      *binding.Namespace
	client  transport.HTTPDoer
	metrics *transport.Metrics
}

// NewSDK validates cfg, builds the transport stack and registers the
// ChemSpider operations plus those of every configured catalog file.
func NewSDK(cfg *config.Config, opts ...Option) (*Core, error) {
	if cfg == nil {
		cfg = &config.Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if cfg.Debug {
		logLevel.SetLevel(zap.DebugLevel)
	} else {
		logLevel.SetLevel(zap.InfoLevel)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	c := &Core{Config: cfg}
	t := o.transport
	if t == nil {
		c.client = o.client
		if c.client == nil {
			c.client = newHTTPClient(cfg.Timeouts)
		}
		t = transport.NewHTTP(c.client, cfg.UserAgent)
	}
	if o.registerer != nil {
		c.metrics = transport.NewMetrics(o.registerer)
		t = transport.Instrument(t, c.metrics)
	}

	c.ns = binding.NewNamespace(rest.NewInvoker(t, o.parser), cfg.Addressing)
	if err := chemspider.Register(c.ns); err != nil {
		return nil, fmt.Errorf("register chemspider operations: %w", err)
	}
	for _, path := range cfg.Catalogs {
		if _, err := c.DefineCatalog(path); err != nil {
			return nil, err
		}
	}

	zap.L().Debug("sdk initialized",
		zap.Int("operations", len(c.ns.Bindings())),
		zap.String("host", cfg.Addressing.WithDefaults().Host))
	return c, nil
}

func newHTTPClient(t config.Timeouts) *http.Client {
	base := http.DefaultTransport.(*http.Transport).Clone()
	base.DialContext = (&net.Dialer{Timeout: t.Dial}).DialContext
	return &http.Client{Timeout: t.HTTP, Transport: base}
}

// Namespace returns the namespace holding every defined operation.
func (c *Core) Namespace() *binding.Namespace {
	return c.ns
}

// Metrics returns the transport metrics, or nil without WithRegisterer.
func (c *Core) Metrics() *transport.Metrics {
	return c.metrics
}

// Operation returns the binding of service.operation.
func (c *Core) Operation(service, operation string) (*binding.Binding, error) {
	b, ok := c.ns.Lookup(service, operation)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownOperation, service, operation)
	}
	return b, nil
}

// Define declares an additional operation, or redefines an existing one.
func (c *Core) Define(service, operation string, paramNames []string, shape model.Shape) *binding.Binding {
	return c.ns.Define(service, operation, paramNames, shape)
}

// DefineCatalog registers the operations of a YAML catalog file. Datatypes
// may name the ChemSpider record types.
func (c *Core) DefineCatalog(path string) ([]*binding.Binding, error) {
	descs, err := catalog.ParseFile(path, chemspider.Types())
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return catalog.Register(c.ns, descs), nil
}

// Operations returns the descriptors of every defined operation, sorted by
// service and operation name.
func (c *Core) Operations() []model.OperationDescriptor {
	bindings := c.ns.Bindings()
	out := make([]model.OperationDescriptor, len(bindings))
	for i, b := range bindings {
		out[i] = b.Descriptor()
	}
	return out
}

// Close releases idle connections of the SDK-owned HTTP client.
func (c *Core) Close() {
	if hc, ok := c.client.(*http.Client); ok {
		hc.CloseIdleConnections()
	}
}
