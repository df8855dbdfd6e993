// Package model defines the data structures shared by every layer of the SDK:
// operation descriptors, response shapes, addressing options, request
// parameters, the document-query capability and the error taxonomy.
//
// # Operation Descriptors
//
// An OperationDescriptor identifies one remote operation:
//
//	type OperationDescriptor struct {
//		ServiceName   string   // e.g. "InChI"
//		OperationName string   // e.g. "InChIKeyToCSID"
//		ParamNames    []string // ordered parameter names
//		Shape         Shape    // how to read the response
//	}
//
// The pair (ServiceName, OperationName) is the descriptor's identity and is
// returned by Key.
//
// # Response Shapes
//
// A Shape tells the response mapper which nodes to select and how to turn
// them into values:
//
//	Shape{Selector: "string", Target: Integer, FirstChild: true}
//
// Target is a CastTarget, a closed union of:
//
//   - Primitive: one of Boolean, Integer, Float, String, DateTime, URI, Decimal;
//   - Structured: an AttributeMap (ordered field name → Shape), optionally
//     paired with a Constructor that reifies the extracted fields.
//
// FirstChild collapses the result list to its first element (nil when empty);
// otherwise the full ordered list is returned.
//
// # Addressing
//
// Addressing describes where a request goes. Zero fields mean "use the
// default"; WithDefaults fills them and Merge layers per-call overrides on top
// of compile-time defaults without mutating either value.
//
// # Document Capability
//
// The response mapper reads documents only through the Node and
// DocumentParser interfaces, so the XML backend can be replaced.
//
// # Errors
//
// All failures surfaced by the SDK are one of UnsupportedCastError,
// InvalidURIError, TransportError, MalformedResponseError or ExtractionError.
// Use errors.As to branch on them.
package model
