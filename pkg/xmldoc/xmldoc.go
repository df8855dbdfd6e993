// Package xmldoc implements the document-query capability on top of
// github.com/antchfx/xmlquery.
//
// Selectors use a compact CSS-like syntax: whitespace-separated element names
// address descendants of descendants, so "ArrayOfString string" selects every
// <string> below an <ArrayOfString>. Names match by local name only, which
// lets documents carrying a default namespace (as ASMX responses do) match
// plain selectors. A "*" segment matches any element, a selector starting
// with '/', '.' or '(' is taken as raw XPath, and the empty selector selects
// the current node itself.
package xmldoc

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/chemspider/chemspider-sdk-go/pkg/model"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize bounds the number of compiled selectors kept by a Parser.
const DefaultCacheSize = 512

// Parser parses XML response bodies. It memoizes compiled selectors and is
// safe for concurrent use.
type Parser struct {
	exprs *lru.Cache[string, *xpath.Expr]
}

// NewParser returns a Parser with a DefaultCacheSize selector cache.
func NewParser() *Parser {
	p, err := NewParserSize(DefaultCacheSize)
	if err != nil {
		panic(err)
	}
	return p
}

// NewParserSize returns a Parser caching up to size compiled selectors.
func NewParserSize(size int) (*Parser, error) {
	cache, err := lru.New[string, *xpath.Expr](size)
	if err != nil {
		return nil, err
	}
	return &Parser{exprs: cache}, nil
}

// Parse implements model.DocumentParser. The body must contain a root
// element.
func (p *Parser) Parse(body []byte) (model.Node, error) {
	doc, err := xmlquery.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	if !hasElement(doc) {
		return nil, errors.New("document has no root element")
	}
	return &node{n: doc, p: p}, nil
}

func hasElement(doc *xmlquery.Node) bool {
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			return true
		}
	}
	return false
}

// Compile translates selector to XPath and compiles it, reusing cached
// expressions.
func (p *Parser) Compile(selector string) (*xpath.Expr, error) {
	if expr, ok := p.exprs.Get(selector); ok {
		return expr, nil
	}
	path, err := ToXPath(selector)
	if err != nil {
		return nil, err
	}
	expr, err := xpath.Compile(path)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", path, err)
	}
	p.exprs.Add(selector, expr)
	return expr, nil
}

// CachedSelectors reports how many compiled selectors are cached.
func (p *Parser) CachedSelectors() int {
	return p.exprs.Len()
}

// ToXPath translates a compact selector into a namespace-agnostic XPath
// expression relative to the context node.
func ToXPath(selector string) (string, error) {
	s := strings.TrimSpace(selector)
	switch {
	case s == "":
		return ".", nil
	case strings.HasPrefix(s, "/"), strings.HasPrefix(s, "."), strings.HasPrefix(s, "("):
		return s, nil
	}
	var b strings.Builder
	b.WriteString(".")
	for _, seg := range strings.Fields(s) {
		b.WriteString("//")
		if seg == "*" {
			b.WriteString("*")
			continue
		}
		if i := strings.LastIndexByte(seg, ':'); i >= 0 {
			seg = seg[i+1:]
		}
		if !validName(seg) {
			return "", fmt.Errorf("invalid selector segment %q", seg)
		}
		b.WriteString("*[local-name()='")
		b.WriteString(seg)
		b.WriteString("']")
	}
	return b.String(), nil
}

func validName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r > 0x7f:
		case i > 0 && (r == '-' || r == '.' || r >= '0' && r <= '9'):
		default:
			return false
		}
	}
	return true
}

type node struct {
	n *xmlquery.Node
	p *Parser
}

// Query implements model.Node.
func (n *node) Query(selector string) ([]model.Node, error) {
	expr, err := n.p.Compile(selector)
	if err != nil {
		return nil, err
	}
	matches := xmlquery.QuerySelectorAll(n.n, expr)
	out := make([]model.Node, 0, len(matches))
	for _, m := range matches {
		out = append(out, &node{n: m, p: n.p})
	}
	return out, nil
}

// Text implements model.Node.
func (n *node) Text() string {
	return n.n.InnerText()
}
