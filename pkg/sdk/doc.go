// Package sdk provides the high-level entry point for calling ChemSpider web
// services.
//
// The SDK hides request construction, transport and XML decoding behind
// bindings generated from operation descriptors. Every ChemSpider operation
// is registered on construction; further operations can be declared at run
// time or loaded from YAML catalogs.
//
// # Quick Start
//
//	import (
//		"github.com/chemspider/chemspider-sdk-go/pkg/config"
//		"github.com/chemspider/chemspider-sdk-go/pkg/sdk"
//	)
//
//	func main() {
//		cfg := &config.Config{Token: "YOUR_TOKEN", Debug: true}
//
//		core, err := sdk.NewSDK(cfg)
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer core.Close()
//
//		out, err := core.CallWithJSON(ctx, "GET", "InChI", "InChIKeyToCSID",
//			[]byte(`{"inchi_key":"BSYNRYMUTXBXSQ-UHFFFAOYSA-N"}`))
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Printf("Result: %s\n", out)
//	}
//
// # Architecture
//
// The SDK coordinates several packages:
//
//   - binding: namespace of callable operations and argument normalization
//   - rest: one call end to end (URI, transport, parsing, extraction)
//   - transport: HTTP GET/POST with optional Prometheus metrics
//   - xmldoc and mapper: selector evaluation and typed extraction
//   - catalog and chemspider: declarative operation descriptors
//
// # Calling Operations
//
// Typed results come from the bindings themselves:
//
//	b, err := core.Operation("Search", "GetCompoundInfo")
//	v, err := b.Get(ctx, 682, token)
//	info, ok := model.Scalar[chemspider.CompoundInfo](v)
//
// Call does the lookup and method dispatch in one step. CallWithMap and
// CallWithJSON take named parameters, fill in the configured token and
// render results as JSON-compatible values: times become RFC 3339 strings,
// URLs and decimals become strings and records become objects.
//
// A trailing model.Addressing argument overrides the configured addressing
// for one call:
//
//	v, err := b.Get(ctx, 682, token, model.Addressing{Host: "mirror.example.com"})
//
// # Options
//
//   - WithHTTPClient: custom HTTP client (proxies, TLS, tests)
//   - WithTransport: replace the HTTP transport entirely
//   - WithRegisterer: record request counts and latencies in Prometheus
//   - WithParser: replace the XML document parser
//
// # Logging
//
// The package installs a console zap logger as the global logger. Requests
// are traced at debug level, which Config.Debug enables. Replace it with
// zap.ReplaceGlobals for custom logging.
//
// # Thread Safety
//
// Core and the bindings it returns are safe for concurrent use. Redefining an
// operation affects calls that start afterwards.
package sdk
