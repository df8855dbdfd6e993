package model

import "strings"

// Addressing defaults.
const (
	DefaultScheme     = "http"
	DefaultHost       = "www.chemspider.com"
	DefaultPort       = 80
	DefaultTLSPort    = 443
	DefaultPathFormat = "/%s.asmx/%s"
)

// Addressing configures where a request is sent. Zero values mean "not set".
// When Path is empty, PathFormat is applied to (service, operation).
type Addressing struct {
	Scheme     string `json:"scheme,omitempty" yaml:"scheme,omitempty"`
	Host       string `json:"host,omitempty" yaml:"host,omitempty"`
	Port       int    `json:"port,omitempty" yaml:"port,omitempty"`
	Path       string `json:"path,omitempty" yaml:"path,omitempty"`
	PathFormat string `json:"path_format,omitempty" yaml:"path_format,omitempty"`
	Query      string `json:"query,omitempty" yaml:"query,omitempty"`
	Fragment   string `json:"fragment,omitempty" yaml:"fragment,omitempty"`
}

// WithDefaults returns a copy of a with unset authority and path fields
// filled in:
//
//	Scheme:     http
//	Host:       www.chemspider.com
//	Port:       80 (443 for https)
//	PathFormat: /%s.asmx/%s
func (a Addressing) WithDefaults() Addressing {
	out := a
	if out.Scheme == "" {
		out.Scheme = DefaultScheme
	}
	if out.Host == "" {
		out.Host = DefaultHost
	}
	if out.Port == 0 {
		if strings.EqualFold(out.Scheme, "https") {
			out.Port = DefaultTLSPort
		} else {
			out.Port = DefaultPort
		}
	}
	if out.Path == "" && out.PathFormat == "" {
		out.PathFormat = DefaultPathFormat
	}
	return out
}

// Merge returns a copy of a where every field set in override replaces the
// corresponding field of a. An override PathFormat without an override Path
// drops an inherited Path so the format takes effect.
func (a Addressing) Merge(override Addressing) Addressing {
	out := a
	if override.Scheme != "" {
		out.Scheme = override.Scheme
	}
	if override.Host != "" {
		out.Host = override.Host
	}
	if override.Port != 0 {
		out.Port = override.Port
	}
	if override.PathFormat != "" {
		out.PathFormat = override.PathFormat
		if override.Path == "" {
			out.Path = ""
		}
	}
	if override.Path != "" {
		out.Path = override.Path
	}
	if override.Query != "" {
		out.Query = override.Query
	}
	if override.Fragment != "" {
		out.Fragment = override.Fragment
	}
	return out
}

// IsZero reports whether no field is set.
func (a Addressing) IsZero() bool {
	return a == Addressing{}
}
