package model

// Node is an element of a parsed response document.
type Node interface {
	// Query returns the nodes matching selector, relative to this node, in
	// document order. No match is an empty result, not an error.
	Query(selector string) ([]Node, error)
	// Text returns the concatenated text content of the node.
	Text() string
}

// DocumentParser turns a raw response body into the root Node of a document.
type DocumentParser interface {
	Parse(body []byte) (Node, error)
}
