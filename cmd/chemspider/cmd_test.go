package main

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/chemspider/chemspider-sdk-go/internal/testutil/httpfake"
	"github.com/chemspider/chemspider-sdk-go/pkg/sdk"
	"github.com/google/go-cmp/cmp"
)

func run(t *testing.T, responses []*http.Response, args ...string) (string, *httpfake.FakeDoer, error) {
	t.Helper()
	doer := httpfake.NewFakeDoer(t, responses...)
	sdkOptions = []sdk.Option{sdk.WithHTTPClient(doer)}
	t.Cleanup(func() { sdkOptions = nil })

	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), doer, err
}

func TestListFiltersByService(t *testing.T) {
	out, _, err := run(t, nil, "list", "spectra")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 Spectra operations, got:\n%s", out)
	}
	want := "Spectra.GetSpectrumInfo(spc_id, token)\tCSSpectrumInfo -> record(spc_id, spc_type, csid, file_name, comments, original_url, submitted_date)"
	if lines[3] != want {
		t.Fatalf("unexpected line:\n%s\nwant:\n%s", lines[3], want)
	}
}

func TestCallPrintsJSON(t *testing.T) {
	out, doer, err := run(t, []*http.Response{httpfake.XML(httpfake.ArrayOfInt)},
		"call", "Search", "SimpleSearch", "--arg", "query=ethanol", "--token", "secret",
		"--scheme", "https", "--host", "mirror.example.com")
	if err != nil {
		t.Fatalf("call error: %v", err)
	}
	if diff := cmp.Diff("[\n  682,\n  2157\n]\n", out); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
	if got := doer.Requests()[0].URL; got != "https://mirror.example.com:443/Search.asmx/SimpleSearch?query=ethanol&token=secret" {
		t.Fatalf("url = %s", got)
	}
}

func TestCallPost(t *testing.T) {
	_, doer, err := run(t, []*http.Response{httpfake.XML(httpfake.Boolean)},
		"call", "InChI", "IsValidInChIKey", "--post", "-a", "inchi_key=K")
	if err != nil {
		t.Fatalf("call error: %v", err)
	}
	r := doer.Requests()[0]
	if r.Method != http.MethodPost || r.Body != "inchi_key=K" {
		t.Fatalf("unexpected request %+v", r)
	}
}

func TestCallErrors(t *testing.T) {
	if _, _, err := run(t, nil, "call", "InChI", "Nope"); err == nil {
		t.Fatal("expected error for unknown operation")
	}
	if _, _, err := run(t, nil, "call", "InChI", "InChIKeyToCSID", "--arg", "novalue"); err == nil {
		t.Fatal("expected error for malformed argument")
	}
	if _, _, err := run(t, nil, "call", "InChI"); err == nil {
		t.Fatal("expected error for missing operation argument")
	}
}

func TestParseArgs(t *testing.T) {
	got, err := parseArgs([]string{"a=1", "b=x=y", "a=2", "a=3", "c="})
	if err != nil {
		t.Fatalf("parseArgs error: %v", err)
	}
	want := map[string]any{"a": []string{"1", "2", "3"}, "b": "x=y", "c": ""}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("parseArgs mismatch (-want +got):\n%s", diff)
	}
}
