// Package chemspider declares the ChemSpider web service operations and the
// record types their responses decode into.
//
// The operations live in an embedded catalog (services.yaml) and are turned
// into bindings with Register:
//
//	ns := binding.NewNamespace(inv, model.Addressing{})
//	if err := chemspider.Register(ns); err != nil {
//		return err
//	}
//	b, _ := ns.Lookup("Search", "GetCompoundInfo")
//	v, err := b.Get(ctx, 682, token)
//	info, ok := model.Scalar[chemspider.CompoundInfo](v)
package chemspider

import (
	_ "embed"
	"maps"
	"sync"

	"github.com/chemspider/chemspider-sdk-go/pkg/binding"
	"github.com/chemspider/chemspider-sdk-go/pkg/catalog"
	"github.com/chemspider/chemspider-sdk-go/pkg/model"
)

// Service names.
const (
	InChI       = "InChI"
	MassSpecAPI = "MassSpecAPI"
	Search      = "Search"
	Spectra     = "Spectra"
)

//go:embed services.yaml
var servicesYAML []byte

var types = map[string]model.Constructor{
	"CompoundInfo":         CompoundInfoType,
	"ExtendedCompoundInfo": ExtendedCompoundInfoType,
	"SpectrumInfo":         SpectrumInfoType,
	"ExtRef":               ExtRefType,
}

// Types returns the record constructors by the datatype names catalogs use.
func Types() map[string]model.Constructor {
	return maps.Clone(types)
}

var descriptors = sync.OnceValues(func() ([]model.OperationDescriptor, error) {
	return catalog.Parse(servicesYAML, types)
})

// Descriptors returns the ChemSpider operation descriptors in catalog order.
func Descriptors() ([]model.OperationDescriptor, error) {
	descs, err := descriptors()
	if err != nil {
		return nil, err
	}
	out := make([]model.OperationDescriptor, len(descs))
	for i, d := range descs {
		out[i] = d.Clone()
	}
	return out, nil
}

// Register defines every ChemSpider operation in ns.
func Register(ns *binding.Namespace) error {
	descs, err := Descriptors()
	if err != nil {
		return err
	}
	catalog.Register(ns, descs)
	return nil
}
