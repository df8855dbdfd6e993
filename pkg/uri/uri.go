package uri

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/chemspider/chemspider-sdk-go/pkg/model"
)

// Build assembles the request URI of an operation:
//
//  1. scheme://host:port from the addressing (defaults applied);
//  2. the explicit Path, or PathFormat applied to (service, operation);
//  3. the explicit Query and the encoded params, joined with '&' when both
//     are non-empty;
//  4. the Fragment.
//
// Empty stages are skipped, so the result never ends in a bare '?' or '#'.
// Any assembly or parse failure is returned as *model.InvalidURIError.
func Build(service, operation string, params model.Params, a model.Addressing) (*url.URL, error) {
	a = a.WithDefaults()

	var b strings.Builder
	b.WriteString(a.Scheme)
	b.WriteString("://")
	host := strings.TrimSuffix(strings.TrimPrefix(a.Host, "["), "]")
	b.WriteString(net.JoinHostPort(host, strconv.Itoa(a.Port)))

	if a.Path != "" {
		b.WriteString(a.Path)
	} else {
		if strings.Count(a.PathFormat, "%s") != 2 || strings.Count(a.PathFormat, "%") != 2 {
			return nil, &model.InvalidURIError{
				URI: a.PathFormat,
				Err: errors.New("path format must contain exactly two %s verbs"),
			}
		}
		b.WriteString(fmt.Sprintf(a.PathFormat, service, operation))
	}

	var query []string
	for _, q := range []string{a.Query, EncodeQuery(params)} {
		if q = strings.TrimSpace(q); q != "" {
			query = append(query, q)
		}
	}
	if len(query) > 0 {
		b.WriteByte('?')
		b.WriteString(strings.Join(query, "&"))
	}

	if a.Fragment != "" {
		b.WriteByte('#')
		b.WriteString(a.Fragment)
	}

	raw := b.String()
	u, err := url.Parse(raw)
	if err != nil {
		return nil, &model.InvalidURIError{URI: raw, Err: err}
	}
	if u.Hostname() == "" {
		return nil, &model.InvalidURIError{URI: raw, Err: errors.New("missing host")}
	}
	return u, nil
}
