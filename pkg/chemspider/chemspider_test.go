package chemspider

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/chemspider/chemspider-sdk-go/internal/testutil/httpfake"
	"github.com/chemspider/chemspider-sdk-go/pkg/binding"
	"github.com/chemspider/chemspider-sdk-go/pkg/model"
	"github.com/chemspider/chemspider-sdk-go/pkg/rest"
	"github.com/chemspider/chemspider-sdk-go/pkg/transport"
	"github.com/google/go-cmp/cmp"
)

func TestDescriptorsCoverAllServices(t *testing.T) {
	descs, err := Descriptors()
	if err != nil {
		t.Fatalf("Descriptors error: %v", err)
	}
	counts := map[string]int{}
	for _, d := range descs {
		counts[d.ServiceName]++
	}
	want := map[string]int{InChI: 13, MassSpecAPI: 8, Search: 11, Spectra: 4}
	if diff := cmp.Diff(want, counts); diff != "" {
		t.Fatalf("operation counts mismatch (-want +got):\n%s", diff)
	}
}

func TestDescriptorsAreIndependentCopies(t *testing.T) {
	first, err := Descriptors()
	if err != nil {
		t.Fatalf("Descriptors error: %v", err)
	}
	first[0].ParamNames[0] = "mutated"
	second, _ := Descriptors()
	if second[0].ParamNames[0] == "mutated" {
		t.Fatal("Descriptors shares state between calls")
	}
}

func newNamespace(t *testing.T, responses ...*http.Response) (*binding.Namespace, *httpfake.FakeDoer) {
	t.Helper()
	doer := httpfake.NewFakeDoer(t, responses...)
	ns := binding.NewNamespace(rest.NewInvoker(transport.NewHTTP(doer, ""), nil), model.Addressing{})
	if err := Register(ns); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	return ns, doer
}

func lookup(t *testing.T, ns *binding.Namespace, service, operation string) *binding.Binding {
	t.Helper()
	b, ok := ns.Lookup(service, operation)
	if !ok {
		t.Fatalf("%s.%s is not registered", service, operation)
	}
	return b
}

func TestInChIKeyToCSID(t *testing.T) {
	ns, doer := newNamespace(t, httpfake.XML(httpfake.CSIDString))
	v, err := lookup(t, ns, InChI, "InChIKeyToCSID").Get(context.Background(), "BSYNRYMUTXBXSQ-UHFFFAOYSA-N")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if csid, ok := model.Scalar[int64](v); !ok || csid != 682 {
		t.Fatalf("csid = %v", v)
	}
	if got := doer.Requests()[0].URL; got != "http://www.chemspider.com:80/InChI.asmx/InChIKeyToCSID?inchi_key=BSYNRYMUTXBXSQ-UHFFFAOYSA-N" {
		t.Fatalf("url = %s", got)
	}
}

func TestIsValidInChIKey(t *testing.T) {
	ns, _ := newNamespace(t, httpfake.XML(httpfake.Boolean))
	v, err := lookup(t, ns, InChI, "IsValidInChIKey").Post(context.Background(), map[string]any{"inchi_key": "K"})
	if err != nil {
		t.Fatalf("Post error: %v", err)
	}
	if ok, _ := model.Scalar[bool](v); !ok {
		t.Fatalf("IsValidInChIKey = %v", v)
	}
}

func TestSimpleSearch(t *testing.T) {
	ns, _ := newNamespace(t, httpfake.XML(httpfake.ArrayOfInt))
	v, err := lookup(t, ns, Search, "SimpleSearch").Get(context.Background(), "ethanol", "token")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	ids, err := model.Sequence[int64](v)
	if err != nil {
		t.Fatalf("Sequence error: %v", err)
	}
	if diff := cmp.Diff([]int64{682, 2157}, ids); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestGetCompoundInfo(t *testing.T) {
	ns, _ := newNamespace(t, httpfake.XML(httpfake.CompoundInfo))
	v, err := lookup(t, ns, Search, "GetCompoundInfo").Get(context.Background(), 682, "token")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	want := CompoundInfo{CSID: 682, InChI: "InChI=1S/C2H6O/c1-2-3/h3H,2H2,1H3", InChIKey: "LFQSCWFLJHTTHZ-UHFFFAOYSA-N", SMILES: "CCO"}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Fatalf("compound mismatch (-want +got):\n%s", diff)
	}
}

func TestGetExtendedCompoundInfo(t *testing.T) {
	ns, _ := newNamespace(t, httpfake.XML(httpfake.ExtendedCompoundInfo))
	v, err := lookup(t, ns, MassSpecAPI, "GetExtendedCompoundInfo").Get(context.Background(), 682, "token")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	info, ok := model.Scalar[ExtendedCompoundInfo](v)
	if !ok {
		t.Fatalf("result is %T", v)
	}
	if info.MolecularFormula != "C_{2}H_{6}O" || info.MonoisotopicMass != 46.041866 || info.CommonName != "Ethanol" {
		t.Fatalf("unexpected info %+v", info)
	}
}

func TestGetCompoundSpectraInfo(t *testing.T) {
	ns, _ := newNamespace(t, httpfake.XML(httpfake.ArrayOfSpectrumInfo))
	v, err := lookup(t, ns, Spectra, "GetCompoundSpectraInfo").Get(context.Background(), 682, "token")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	spectra, err := model.Sequence[SpectrumInfo](v)
	if err != nil || len(spectra) != 1 {
		t.Fatalf("Sequence = %v, %v", spectra, err)
	}
	s := spectra[0]
	if s.SpcID != 36 || s.SpcType != "HNMR" || s.CSID != 682 {
		t.Fatalf("unexpected spectrum %+v", s)
	}
	if s.OriginalURL == nil || s.OriginalURL.String() != "http://example.org/spectra/36" {
		t.Fatalf("original url = %v", s.OriginalURL)
	}
	want := time.Date(2007, 8, 8, 20, 18, 36, 593000000, time.UTC)
	if !s.SubmittedDate.Equal(want) {
		t.Fatalf("submitted date = %v, want %v", s.SubmittedDate, want)
	}
}

func TestCSID2ExtRefs(t *testing.T) {
	ns, _ := newNamespace(t, httpfake.XML(httpfake.ArrayOfExtRef))
	v, err := lookup(t, ns, Search, "CSID2ExtRefs").Get(context.Background(), 682, []string{"Wikipedia"}, "token")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	refs, err := model.Sequence[ExtRef](v)
	if err != nil || len(refs) != 1 {
		t.Fatalf("Sequence = %v, %v", refs, err)
	}
	if refs[0].DSName != "Wikipedia" || refs[0].ExtURL.String() != "http://en.wikipedia.org/wiki/Ethanol" {
		t.Fatalf("unexpected ref %+v", refs[0])
	}
}

func TestRecordJSON(t *testing.T) {
	ref := ExtRef{CSID: 1, DSName: "A", ExtID: "x"}
	b, err := ref.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON error: %v", err)
	}
	if got := string(b); got != `{"csid":1,"ds_name":"A","ds_url":"","ext_id":"x","ext_url":""}` {
		t.Fatalf("ExtRef JSON = %s", got)
	}

	b, err = SpectrumInfo{SpcID: 2}.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON error: %v", err)
	}
	if got := string(b); got != `{"spc_id":2,"spc_type":"","csid":0,"file_name":"","comments":"","original_url":""}` {
		t.Fatalf("SpectrumInfo JSON = %s", got)
	}
}

func TestConstructorRejectsWrongTypes(t *testing.T) {
	if _, err := CompoundInfoType.New([]any{"not an int"}); err == nil {
		t.Fatal("expected error for mistyped csid")
	}
	v, err := CompoundInfoType.New(nil)
	if err != nil || v != (CompoundInfo{}) {
		t.Fatalf("New(nil) = %v, %v", v, err)
	}
}
