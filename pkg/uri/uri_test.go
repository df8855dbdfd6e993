package uri

import (
	"errors"
	"testing"

	"github.com/chemspider/chemspider-sdk-go/pkg/model"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func TestEncodeQuery(t *testing.T) {
	tests := []struct {
		name   string
		params model.Params
		want   string
	}{
		{"nil", nil, ""},
		{"empty", model.Params{}, ""},
		{
			name:   "univalued",
			params: model.Params{{Name: "foo", Value: "bar"}, {Name: "alice", Value: "bob"}},
			want:   "foo=bar&alice=bob",
		},
		{
			name:   "multivalued",
			params: model.Params{{Name: "letters", Value: []string{"a", "b", "c"}}},
			want:   "letters=a&letters=b&letters=c",
		},
		{
			name:   "nested",
			params: model.Params{{Name: "csids", Value: []any{1, []int{2, 3}, "4"}}},
			want:   "csids=1&csids=2&csids=3&csids=4",
		},
		{
			name:   "nil value",
			params: model.Params{{Name: "csid", Value: 2157}, {Name: "token", Value: nil}},
			want:   "csid=2157&token=",
		},
		{
			name:   "reserved characters",
			params: model.Params{{Name: "inchi", Value: "InChI=1S/C2H6O/c1-2-3/h3H,2H2,1H3"}, {Name: "q&a", Value: "x y"}},
			want:   "inchi=InChI%3D1S%2FC2H6O%2Fc1-2-3%2Fh3H%2C2H2%2C1H3&q%26a=x+y",
		},
		{
			name:   "stringer",
			params: model.Params{{Name: "mass", Value: decimal.RequireFromString("46.04")}, {Name: "calc3d", Value: true}},
			want:   "mass=46.04&calc3d=true",
		},
		{
			name:   "floats without exponent",
			params: model.Params{{Name: "csid", Value: float64(1e21)}, {Name: "mass", Value: 46.07}, {Name: "range", Value: float32(0.5)}},
			want:   "csid=1000000000000000000000&mass=46.07&range=0.5",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EncodeQuery(tt.params); got != tt.want {
				t.Fatalf("EncodeQuery() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFlattenNilPointer(t *testing.T) {
	var p *int
	got := Flatten(model.Params{{Name: "x", Value: p}})
	if diff := cmp.Diff(model.Params{{Name: "x", Value: ""}}, got); diff != "" {
		t.Fatalf("Flatten mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildDefaults(t *testing.T) {
	params := model.Params{{Name: "inchi_key", Value: "BSYNRYMUTXBXSQ-UHFFFAOYSA-N"}}
	u, err := Build("InChI", "InChIKeyToCSID", params, model.Addressing{})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	want := "http://www.chemspider.com:80/InChI.asmx/InChIKeyToCSID?inchi_key=BSYNRYMUTXBXSQ-UHFFFAOYSA-N"
	if u.String() != want {
		t.Fatalf("Build() = %s, want %s", u, want)
	}
}

func TestBuildOverrides(t *testing.T) {
	params := model.Params{{Name: "inchi_key", Value: "BSYNRYMUTXBXSQ-UHFFFAOYSA-N"}}
	tests := []struct {
		name string
		addr model.Addressing
		want string
	}{
		{
			name: "proxy",
			addr: model.Addressing{Scheme: "https", Host: "example.com", Port: 443, PathFormat: "/proxy/%s/%s"},
			want: "https://example.com:443/proxy/InChI/InChIKeyToCSID?inchi_key=BSYNRYMUTXBXSQ-UHFFFAOYSA-N",
		},
		{
			name: "explicit path",
			addr: model.Addressing{Path: "/mirror/csid"},
			want: "http://www.chemspider.com:80/mirror/csid?inchi_key=BSYNRYMUTXBXSQ-UHFFFAOYSA-N",
		},
		{
			name: "query and fragment",
			addr: model.Addressing{Query: " token=abc ", Fragment: "top"},
			want: "http://www.chemspider.com:80/InChI.asmx/InChIKeyToCSID?token=abc&inchi_key=BSYNRYMUTXBXSQ-UHFFFAOYSA-N#top",
		},
		{
			name: "ipv6 host",
			addr: model.Addressing{Host: "::1", Port: 8080},
			want: "http://[::1]:8080/InChI.asmx/InChIKeyToCSID?inchi_key=BSYNRYMUTXBXSQ-UHFFFAOYSA-N",
		},
		{
			name: "bracketed ipv6 host",
			addr: model.Addressing{Host: "[::1]"},
			want: "http://[::1]:80/InChI.asmx/InChIKeyToCSID?inchi_key=BSYNRYMUTXBXSQ-UHFFFAOYSA-N",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := Build("InChI", "InChIKeyToCSID", params, tt.addr)
			if err != nil {
				t.Fatalf("Build error: %v", err)
			}
			if u.String() != tt.want {
				t.Fatalf("Build() = %s, want %s", u, tt.want)
			}
		})
	}
}

func TestBuildOmitsEmptyStages(t *testing.T) {
	u, err := Build("MassSpecAPI", "GetDatabases", nil, model.Addressing{Query: "   "})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if got, want := u.String(), "http://www.chemspider.com:80/MassSpecAPI.asmx/GetDatabases"; got != want {
		t.Fatalf("Build() = %s, want %s", got, want)
	}
	if u.RawQuery != "" || u.Fragment != "" || u.ForceQuery {
		t.Fatalf("unexpected query/fragment in %s", u)
	}
}

func TestBuildInvalid(t *testing.T) {
	tests := []struct {
		name string
		addr model.Addressing
	}{
		{"bad host", model.Addressing{Host: "bad host"}},
		{"bad scheme", model.Addressing{Scheme: "ht tp"}},
		{"one verb", model.Addressing{PathFormat: "/%s.asmx"}},
		{"extra verb", model.Addressing{PathFormat: "/%s/%s/%d"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build("InChI", "InChIToCSID", nil, tt.addr)
			var iue *model.InvalidURIError
			if !errors.As(err, &iue) {
				t.Fatalf("expected InvalidURIError, got %v", err)
			}
		})
	}
}
