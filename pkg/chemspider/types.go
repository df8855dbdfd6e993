package chemspider

import (
	"encoding/json"
	"net/url"
	"time"

	"github.com/chemspider/chemspider-sdk-go/pkg/model"
)

// field reads values[i] as T, keeping the first conversion error in err.
func field[T any](values []any, i int, err *error) T {
	v, e := model.Positional[T](values, i)
	if e != nil && *err == nil {
		*err = e
	}
	return v
}

func urlString(u *url.URL) string {
	if u == nil {
		return ""
	}
	return u.String()
}

// CompoundInfo is the summary record returned by Search.GetCompoundInfo.
type CompoundInfo struct {
	CSID     int64  `json:"csid"`
	InChI    string `json:"inchi"`
	InChIKey string `json:"inchi_key"`
	SMILES   string `json:"smiles"`
}

// CompoundInfoType reads CompoundInfo elements.
var CompoundInfoType = model.ConstructorFunc{
	Fields: model.AttributeMap{
		{Name: "csid", Shape: model.Shape{Selector: "CSID", Target: model.Integer, FirstChild: true}},
		{Name: "inchi", Shape: model.Shape{Selector: "InChI", Target: model.String, FirstChild: true}},
		{Name: "inchi_key", Shape: model.Shape{Selector: "InChIKey", Target: model.String, FirstChild: true}},
		{Name: "smiles", Shape: model.Shape{Selector: "SMILES", Target: model.String, FirstChild: true}},
	},
	Build: func(values []any) (any, error) {
		var err error
		c := CompoundInfo{
			CSID:     field[int64](values, 0, &err),
			InChI:    field[string](values, 1, &err),
			InChIKey: field[string](values, 2, &err),
			SMILES:   field[string](values, 3, &err),
		}
		if err != nil {
			return nil, err
		}
		return c, nil
	},
}

// ExtendedCompoundInfo carries the mass spectrometry properties of a
// compound.
type ExtendedCompoundInfo struct {
	CSID             int64   `json:"csid"`
	MolecularFormula string  `json:"molecular_formula"`
	SMILES           string  `json:"smiles"`
	InChI            string  `json:"inchi"`
	InChIKey         string  `json:"inchi_key"`
	AverageMass      float64 `json:"average_mass"`
	MolecularWeight  float64 `json:"molecular_weight"`
	MonoisotopicMass float64 `json:"monoisotopic_mass"`
	NominalMass      float64 `json:"nominal_mass"`
	ALogP            float64 `json:"a_log_p"`
	XLogP            float64 `json:"x_log_p"`
	CommonName       string  `json:"common_name"`
}

// ExtendedCompoundInfoType reads ExtendedCompoundInfo elements.
var ExtendedCompoundInfoType = model.ConstructorFunc{
	Fields: model.AttributeMap{
		{Name: "csid", Shape: model.Shape{Selector: "CSID", Target: model.Integer, FirstChild: true}},
		{Name: "molecular_formula", Shape: model.Shape{Selector: "MF", Target: model.String, FirstChild: true}},
		{Name: "smiles", Shape: model.Shape{Selector: "SMILES", Target: model.String, FirstChild: true}},
		{Name: "inchi", Shape: model.Shape{Selector: "InChI", Target: model.String, FirstChild: true}},
		{Name: "inchi_key", Shape: model.Shape{Selector: "InChIKey", Target: model.String, FirstChild: true}},
		{Name: "average_mass", Shape: model.Shape{Selector: "AverageMass", Target: model.Float, FirstChild: true}},
		{Name: "molecular_weight", Shape: model.Shape{Selector: "MolecularWeight", Target: model.Float, FirstChild: true}},
		{Name: "monoisotopic_mass", Shape: model.Shape{Selector: "MonoisotopicMass", Target: model.Float, FirstChild: true}},
		{Name: "nominal_mass", Shape: model.Shape{Selector: "NominalMass", Target: model.Float, FirstChild: true}},
		{Name: "a_log_p", Shape: model.Shape{Selector: "ALogP", Target: model.Float, FirstChild: true}},
		{Name: "x_log_p", Shape: model.Shape{Selector: "XLogP", Target: model.Float, FirstChild: true}},
		{Name: "common_name", Shape: model.Shape{Selector: "CommonName", Target: model.String, FirstChild: true}},
	},
	Build: func(values []any) (any, error) {
		var err error
		c := ExtendedCompoundInfo{
			CSID:             field[int64](values, 0, &err),
			MolecularFormula: field[string](values, 1, &err),
			SMILES:           field[string](values, 2, &err),
			InChI:            field[string](values, 3, &err),
			InChIKey:         field[string](values, 4, &err),
			AverageMass:      field[float64](values, 5, &err),
			MolecularWeight:  field[float64](values, 6, &err),
			MonoisotopicMass: field[float64](values, 7, &err),
			NominalMass:      field[float64](values, 8, &err),
			ALogP:            field[float64](values, 9, &err),
			XLogP:            field[float64](values, 10, &err),
			CommonName:       field[string](values, 11, &err),
		}
		if err != nil {
			return nil, err
		}
		return c, nil
	},
}

// SpectrumInfo describes one spectrum attached to a compound.
type SpectrumInfo struct {
	SpcID         int64
	SpcType       string
	CSID          int64
	FileName      string
	Comments      string
	OriginalURL   *url.URL
	SubmittedDate time.Time
}

// MarshalJSON renders the URL as a string and omits an unset date.
func (s SpectrumInfo) MarshalJSON() ([]byte, error) {
	out := struct {
		SpcID         int64      `json:"spc_id"`
		SpcType       string     `json:"spc_type"`
		CSID          int64      `json:"csid"`
		FileName      string     `json:"file_name"`
		Comments      string     `json:"comments"`
		OriginalURL   string     `json:"original_url"`
		SubmittedDate *time.Time `json:"submitted_date,omitempty"`
	}{
		SpcID:       s.SpcID,
		SpcType:     s.SpcType,
		CSID:        s.CSID,
		FileName:    s.FileName,
		Comments:    s.Comments,
		OriginalURL: urlString(s.OriginalURL),
	}
	if !s.SubmittedDate.IsZero() {
		out.SubmittedDate = &s.SubmittedDate
	}
	return json.Marshal(out)
}

// SpectrumInfoType reads CSSpectrumInfo elements.
var SpectrumInfoType = model.ConstructorFunc{
	Fields: model.AttributeMap{
		{Name: "spc_id", Shape: model.Shape{Selector: "spc_id", Target: model.Integer, FirstChild: true}},
		{Name: "spc_type", Shape: model.Shape{Selector: "spc_type", Target: model.String, FirstChild: true}},
		{Name: "csid", Shape: model.Shape{Selector: "csid", Target: model.Integer, FirstChild: true}},
		{Name: "file_name", Shape: model.Shape{Selector: "file_name", Target: model.String, FirstChild: true}},
		{Name: "comments", Shape: model.Shape{Selector: "comments", Target: model.String, FirstChild: true}},
		{Name: "original_url", Shape: model.Shape{Selector: "original_url", Target: model.URI, FirstChild: true}},
		{Name: "submitted_date", Shape: model.Shape{Selector: "submitted_date", Target: model.DateTime, FirstChild: true}},
	},
	Build: func(values []any) (any, error) {
		var err error
		s := SpectrumInfo{
			SpcID:         field[int64](values, 0, &err),
			SpcType:       field[string](values, 1, &err),
			CSID:          field[int64](values, 2, &err),
			FileName:      field[string](values, 3, &err),
			Comments:      field[string](values, 4, &err),
			OriginalURL:   field[*url.URL](values, 5, &err),
			SubmittedDate: field[time.Time](values, 6, &err),
		}
		if err != nil {
			return nil, err
		}
		return s, nil
	},
}

// ExtRef links a compound to an external data source.
type ExtRef struct {
	CSID   int64
	DSName string
	DSURL  *url.URL
	ExtID  string
	ExtURL *url.URL
}

// MarshalJSON renders the URLs as strings.
func (r ExtRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		CSID   int64  `json:"csid"`
		DSName string `json:"ds_name"`
		DSURL  string `json:"ds_url"`
		ExtID  string `json:"ext_id"`
		ExtURL string `json:"ext_url"`
	}{r.CSID, r.DSName, urlString(r.DSURL), r.ExtID, urlString(r.ExtURL)})
}

// ExtRefType reads ExtRef elements.
var ExtRefType = model.ConstructorFunc{
	Fields: model.AttributeMap{
		{Name: "csid", Shape: model.Shape{Selector: "CSID", Target: model.Integer, FirstChild: true}},
		{Name: "ds_name", Shape: model.Shape{Selector: "ds_name", Target: model.String, FirstChild: true}},
		{Name: "ds_url", Shape: model.Shape{Selector: "ds_url", Target: model.URI, FirstChild: true}},
		{Name: "ext_id", Shape: model.Shape{Selector: "ext_id", Target: model.String, FirstChild: true}},
		{Name: "ext_url", Shape: model.Shape{Selector: "ext_url", Target: model.URI, FirstChild: true}},
	},
	Build: func(values []any) (any, error) {
		var err error
		r := ExtRef{
			CSID:   field[int64](values, 0, &err),
			DSName: field[string](values, 1, &err),
			DSURL:  field[*url.URL](values, 2, &err),
			ExtID:  field[string](values, 3, &err),
			ExtURL: field[*url.URL](values, 4, &err),
		}
		if err != nil {
			return nil, err
		}
		return r, nil
	},
}
