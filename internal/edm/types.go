// Package edm maps literal values appearing in query text onto their EDM
// primitive types and converts literal text into Go values.
package edm

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EDM primitive type names of the literal kinds the parser produces.
const (
	BooleanType        = "Edm.Boolean"
	Int32Type          = "Edm.Int32"
	DecimalType        = "Edm.Decimal"
	StringType         = "Edm.String"
	GuidType           = "Edm.Guid"
	DateTimeOffsetType = "Edm.DateTimeOffset"
)

// Primitive is the set of Go types used to carry literal values.
type Primitive interface {
	bool | int32 | decimal.Decimal | string | uuid.UUID | time.Time
}

// TypeName returns the EDM type name for a literal value, or "" when the
// value is not one of the Primitive types.
func TypeName(value interface{}) string {
	switch value.(type) {
	case bool:
		return BooleanType
	case int32:
		return Int32Type
	case decimal.Decimal:
		return DecimalType
	case string:
		return StringType
	case uuid.UUID:
		return GuidType
	case time.Time:
		return DateTimeOffsetType
	default:
		return ""
	}
}
