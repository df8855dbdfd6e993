package mapper

import (
	"errors"
	"testing"

	"github.com/chemspider/chemspider-sdk-go/pkg/model"
	"github.com/chemspider/chemspider-sdk-go/pkg/xmldoc"
	"github.com/google/go-cmp/cmp"
)

const compoundInfoXML = `<?xml version="1.0" encoding="utf-8"?>
<CompoundInfo xmlns="http://www.chemspider.com/">
  <CSID>682</CSID>
  <InChI>InChI=1S/C2H6O/c1-2-3/h3H,2H2,1H3</InChI>
  <InChIKey>LFQSCWFLJHTTHZ-UHFFFAOYSA-N</InChIKey>
  <SMILES>CCO</SMILES>
</CompoundInfo>`

const arrayOfIntXML = `<?xml version="1.0" encoding="utf-8"?>
<ArrayOfInt xmlns="http://www.chemspider.com/">
  <int>682</int>
  <int>2157</int>
  <int>5793</int>
</ArrayOfInt>`

func parse(t *testing.T, body string) model.Node {
	t.Helper()
	root, err := xmldoc.NewParser().Parse([]byte(body))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	return root
}

func TestExtractPrimitive(t *testing.T) {
	root := parse(t, arrayOfIntXML)

	tests := []struct {
		name  string
		shape model.Shape
		want  any
	}{
		{
			name:  "all matches",
			shape: model.Shape{Selector: "ArrayOfInt int", Target: model.Integer},
			want:  []any{int64(682), int64(2157), int64(5793)},
		},
		{
			name:  "first child",
			shape: model.Shape{Selector: "ArrayOfInt int", Target: model.Integer, FirstChild: true},
			want:  int64(682),
		},
		{
			name:  "first child without match",
			shape: model.Shape{Selector: "string", Target: model.String, FirstChild: true},
			want:  nil,
		},
		{
			name:  "sequence without match",
			shape: model.Shape{Selector: "string", Target: model.String},
			want:  []any{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(root, tt.shape)
			if err != nil {
				t.Fatalf("Extract error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Extract mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

var compoundFields = model.AttributeMap{
	{Name: "csid", Shape: model.Shape{Selector: "CSID", Target: model.Integer, FirstChild: true}},
	{Name: "smiles", Shape: model.Shape{Selector: "SMILES", Target: model.String, FirstChild: true}},
	{Name: "mass", Shape: model.Shape{Selector: "AverageMass", Target: model.Float, FirstChild: true}},
}

func TestExtractRecord(t *testing.T) {
	root := parse(t, compoundInfoXML)
	got, err := Extract(root, model.Shape{
		Selector:   "CompoundInfo",
		Target:     model.Structured{Attributes: compoundFields},
		FirstChild: true,
	})
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	want := model.Record{"csid": int64(682), "smiles": "CCO", "mass": nil}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Extract mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractNilTargetYieldsEmptyRecords(t *testing.T) {
	root := parse(t, arrayOfIntXML)
	got, err := Extract(root, model.Shape{Selector: "int"})
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	want := []any{model.Record{}, model.Record{}, model.Record{}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Extract mismatch (-want +got):\n%s", diff)
	}
}

type compound struct {
	CSID   int64
	SMILES string
}

func TestExtractWithConstructor(t *testing.T) {
	var seen [][]any
	ctor := model.ConstructorFunc{
		Fields: compoundFields,
		Build: func(values []any) (any, error) {
			seen = append(seen, values)
			csid, err := model.Positional[int64](values, 0)
			if err != nil {
				return nil, err
			}
			smiles, err := model.Positional[string](values, 1)
			if err != nil {
				return nil, err
			}
			return compound{CSID: csid, SMILES: smiles}, nil
		},
	}
	root := parse(t, compoundInfoXML)
	got, err := Extract(root, model.Shape{Selector: "CompoundInfo", Target: model.Reified(ctor)})
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if diff := cmp.Diff([]any{compound{CSID: 682, SMILES: "CCO"}}, got); diff != "" {
		t.Fatalf("Extract mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([][]any{{int64(682), "CCO", nil}}, seen); diff != "" {
		t.Fatalf("constructor arguments mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractNested(t *testing.T) {
	body := `<ArrayOfCSSpectrumInfo xmlns="http://www.chemspider.com/">
  <CSSpectrumInfo><spc_id>1</spc_id><csid>682</csid></CSSpectrumInfo>
  <CSSpectrumInfo><spc_id>2</spc_id><csid>682</csid></CSSpectrumInfo>
</ArrayOfCSSpectrumInfo>`
	shape := model.Shape{
		Selector:   "ArrayOfCSSpectrumInfo",
		FirstChild: true,
		Target: model.Structured{Attributes: model.AttributeMap{
			{Name: "ids", Shape: model.Shape{Selector: "CSSpectrumInfo spc_id", Target: model.Integer}},
			{Name: "first", Shape: model.Shape{
				Selector:   "CSSpectrumInfo",
				FirstChild: true,
				Target: model.Structured{Attributes: model.AttributeMap{
					{Name: "csid", Shape: model.Shape{Selector: "csid", Target: model.Integer, FirstChild: true}},
				}},
			}},
		}},
	}
	got, err := Extract(parse(t, body), shape)
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	want := model.Record{
		"ids":   []any{int64(1), int64(2)},
		"first": model.Record{"csid": int64(682)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Extract mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractConstructorFailure(t *testing.T) {
	boom := errors.New("rejected")
	ctor := model.ConstructorFunc{
		Fields: compoundFields,
		Build:  func([]any) (any, error) { return nil, boom },
	}
	_, err := Extract(parse(t, compoundInfoXML), model.Shape{Selector: "CompoundInfo", Target: model.Reified(ctor)})
	var ee *model.ExtractionError
	if !errors.As(err, &ee) || !errors.Is(err, boom) {
		t.Fatalf("expected ExtractionError wrapping cause, got %v", err)
	}

	// no match means the constructor is never consulted
	got, err := Extract(parse(t, arrayOfIntXML), model.Shape{Selector: "CompoundInfo", Target: model.Reified(ctor), FirstChild: true})
	if err != nil || got != nil {
		t.Fatalf("Extract = %v, %v", got, err)
	}
}

func TestExtractFieldCastFailure(t *testing.T) {
	body := `<CSSpectrumInfo><submitted_date>soon</submitted_date></CSSpectrumInfo>`
	shape := model.Shape{Selector: "CSSpectrumInfo", Target: model.Structured{Attributes: model.AttributeMap{
		{Name: "submitted_date", Shape: model.Shape{Selector: "submitted_date", Target: model.DateTime, FirstChild: true}},
	}}}
	_, err := Extract(parse(t, body), shape)
	var ee *model.ExtractionError
	if !errors.As(err, &ee) || ee.Field != "submitted_date" {
		t.Fatalf("expected ExtractionError for field submitted_date, got %v", err)
	}
}

func TestExtractUnsupportedCast(t *testing.T) {
	_, err := Extract(parse(t, arrayOfIntXML), model.Shape{Selector: "nothing", Target: model.Primitive("complex")})
	var uce *model.UnsupportedCastError
	if !errors.As(err, &uce) {
		t.Fatalf("expected UnsupportedCastError, got %v", err)
	}
}

type failingNode struct{}

func (failingNode) Query(string) ([]model.Node, error) { return nil, errors.New("bad selector") }
func (failingNode) Text() string                       { return "" }

func TestExtractSelectorFailure(t *testing.T) {
	_, err := Extract(failingNode{}, model.Shape{Selector: "x", Target: model.String})
	var ee *model.ExtractionError
	if !errors.As(err, &ee) || ee.Selector != "x" {
		t.Fatalf("expected ExtractionError, got %v", err)
	}
}
