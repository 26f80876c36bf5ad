// Package classify decides, per field, whether a value is meaningful
// client data or structural plumbing, and attaches its semantic role,
// group, and display metadata from the catalog.
package classify

import (
	"github.com/caseglance/caseglance/internal/catalog"
	"github.com/caseglance/caseglance/internal/model"
)

// fallbackOrder sorts synthesized fields after every catalog entry when
// priorities tie.
const fallbackOrder = 1 << 30

// Field classifies a single field. A nil result means the field is
// dropped: absent, an upstream error, or structural. schemaType is the
// source's field-type metadata and may be empty when the schema is
// unavailable.
//
// Precedence: an exact catalog entry always wins; the explicit hidden
// list beats pattern rules; meaningful-name patterns override
// structural detection, including schema types that are only sometimes
// structural.
func Field(name string, nv model.NormalizedValue, cat *catalog.Catalog, schemaType string) *model.ClassifiedField {
	if !nv.Present || nv.IsError {
		return nil
	}

	if e, idx, ok := cat.Entry(name); ok {
		return &model.ClassifiedField{
			SourceField:  name,
			Role:         e.Role,
			Group:        e.Group,
			DataType:     e.DataType,
			Priority:     e.Priority,
			Position:     e.Position,
			Raw:          nv.Scalar,
			CatalogOrder: idx,
		}
	}

	if cat.Hidden(name) {
		return nil
	}
	meaningful := cat.Meaningful(name)
	if cat.Structural(name) && !meaningful {
		return nil
	}
	if schemaType != "" {
		if cat.StructuralType(schemaType) {
			return nil
		}
		if cat.MaybeStructuralType(schemaType) && !meaningful {
			return nil
		}
	}

	group, ok := cat.GroupFor(name)
	if !ok {
		group = catalog.GroupUncategorized
	}
	dt, _ := cat.InferType(nv.Scalar)
	return &model.ClassifiedField{
		SourceField:  name,
		Role:         catalog.SynthesizeRole(name),
		Group:        group,
		DataType:     dt,
		Priority:     catalog.FallbackPriority,
		Raw:          nv.Scalar,
		CatalogOrder: fallbackOrder,
	}
}
