// Command generate-operations-doc renders the built-in ChemSpider operation
// catalog into docs/operations.md.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/chemspider/chemspider-sdk-go/pkg/catalog"
	"github.com/chemspider/chemspider-sdk-go/pkg/chemspider"
	"github.com/chemspider/chemspider-sdk-go/pkg/model"
)

func main() {
	descs, err := chemspider.Descriptors()
	if err != nil {
		log.Fatalf("Failed to load operation catalog: %v", err)
	}

	root, err := moduleRoot()
	if err != nil {
		log.Fatalf("Failed to locate module root: %v", err)
	}

	outPath := filepath.Join(root, "docs", "operations.md")
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		log.Fatalf("Failed to create docs directory: %v", err)
	}
	if err := os.WriteFile(outPath, []byte(render(descs)), 0o600); err != nil {
		log.Fatalf("Failed to write operations reference: %v", err)
	}
}

func render(descs []model.OperationDescriptor) string {
	var b strings.Builder
	b.WriteString("# ChemSpider operations\n\nGenerated by cmd/generate-operations-doc. Do not edit.\n")
	service := ""
	for _, d := range descs {
		if d.ServiceName != service {
			service = d.ServiceName
			fmt.Fprintf(&b, "\n## %s\n\n| Operation | Parameters | Selector | Result |\n|---|---|---|---|\n", service)
		}
		result := catalog.Describe(d.Shape.Target)
		if !d.Shape.FirstChild {
			result = "list of " + result
		}
		fmt.Fprintf(&b, "| %s | %s | `%s` | %s |\n", d.OperationName, strings.Join(d.ParamNames, ", "), d.Shape.Selector, result)
	}
	return b.String()
}

func moduleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, statErr := os.Stat(filepath.Join(dir, "go.mod")); statErr == nil {
			return dir, nil
		}
		next := filepath.Dir(dir)
		if next == dir {
			return "", fmt.Errorf("go.mod not found from %q", dir)
		}
		dir = next
	}
}
