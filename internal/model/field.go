package model

// RawRecord is one case record as delivered by a source adapter: a flat
// mapping from field name to raw value, plus source bookkeeping. Raw
// values may be scalars, single- or multi-element arrays, link objects,
// or error sentinels; no shape is guaranteed.
type RawRecord struct {
	ID     string                 `json:"id,omitempty"`
	Table  string                 `json:"table,omitempty"` // source table or bucket discriminator
	Fields map[string]interface{} `json:"fields"`
}

// NormalizedValue is the result of unwrapping a raw field value.
type NormalizedValue struct {
	Present bool   `json:"present"`
	Scalar  string `json:"scalar,omitempty"`
	IsError bool   `json:"is_error,omitempty"` // upstream formula error/NaN sentinel
}

// DataType identifies how a field value should be formatted for display.
type DataType string

const (
	TypeDate     DataType = "date"
	TypeDateTime DataType = "datetime"
	TypePhone    DataType = "phone"
	TypeEmail    DataType = "email"
	TypeURL      DataType = "url"
	TypeCurrency DataType = "currency"
	TypeBoolean  DataType = "boolean"
	TypeReceipt  DataType = "receipt"
)

// NarrativePosition tags a field's role in sentence composition,
// orthogonal to its semantic group.
type NarrativePosition string

const (
	PositionTemporal NarrativePosition = "temporal" // upcoming dates/deadlines
	PositionSpatial  NarrativePosition = "spatial"  // locations (courts, offices)
	PositionStatus   NarrativePosition = "status"   // case state descriptions
)

// ClassifiedField is the classifier's verdict for one (record, field)
// pair: the field is meaningful, belongs to a semantic group, and can
// be rendered. Immutable after creation.
type ClassifiedField struct {
	SourceField string            `json:"source_field"`
	Role        string            `json:"role"`
	Group       string            `json:"group"`
	DataType    DataType          `json:"data_type,omitempty"`
	Priority    int               `json:"priority"`
	Position    NarrativePosition `json:"position,omitempty"`
	Rendered    string            `json:"rendered"`
	Raw         string            `json:"raw"` // normalized scalar value

	// CatalogOrder is the entry's declaration index in the catalog,
	// used to break priority ties deterministically. Fields without a
	// catalog entry carry a large order so they sort last.
	CatalogOrder int `json:"-"`
}

// NarrativeSentence is one composed sentence of the summary narrative.
type NarrativeSentence struct {
	Order int    `json:"order"`
	Kind  string `json:"kind"`
	Text  string `json:"text"`
}
