// Package binding turns operation descriptors into callable bindings.
//
// A Namespace stores one Binding per (service, operation) pair. Each Binding
// exposes Get and Post, which normalize their loosely-typed arguments into an
// ordered parameter list and forward the call to an Invoker:
//
//	ns := binding.NewNamespace(inv, model.Addressing{})
//	toCSID := ns.Define("InChI", "InChIKeyToCSID", []string{"inchi_key"},
//		model.Shape{Selector: "string", Target: model.String, FirstChild: true})
//
//	csid, err := toCSID.Get(ctx, "BSYNRYMUTXBXSQ-UHFFFAOYSA-N")
//	csid, err = toCSID.Get(ctx, map[string]any{"inchi_key": "BSYNRYMUTXBXSQ-UHFFFAOYSA-N"})
//
// Argument conventions:
//
//   - A trailing model.Addressing (or *model.Addressing) overrides the
//     namespace defaults for that call only.
//   - A single keyed argument (map[string]any, map[string]string,
//     map[Symbol]any, map[any]any or url.Values) is a named-argument map.
//     Each declared parameter is looked up as a Symbol first, then as a
//     string; names missing from the map are left out of the request.
//   - Anything else is positional. Missing positions are sent with an empty
//     value and extra ones are ignored.
//
// Defining the same (service, operation) twice replaces the descriptor of the
// existing Binding; callers holding it observe the new definition on their
// next call.
package binding
