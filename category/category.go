// Package category defines the closed enumeration of element categories a
// typed block vector can store, and the default value each category reads
// back as when the containing block is empty (spec.md section 4.2).
package category

// Category tags the kind of value a data block owns. Modeled after
// schema.FieldType in the teacher repository: a small uint8 enum with a
// String method, no runtime reflection.
type Category uint8

const (
	// Empty is not a stored category — it marks the absence of an element
	// block on a block. Get/CategoryAt use it to report a block with no data.
	Empty Category = iota
	Float64
	Bool
	String
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	// Custom is the user-extensible element category (spec.md section 2,
	// item 1): callers may store arbitrary values under this tag via
	// elemblock.CustomBlock.
	Custom
)

func (c Category) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Float64:
		return "Float64"
	case Bool:
		return "Bool"
	case String:
		return "String"
	case Int8:
		return "Int8"
	case Int16:
		return "Int16"
	case Int32:
		return "Int32"
	case Int64:
		return "Int64"
	case Uint8:
		return "Uint8"
	case Uint16:
		return "Uint16"
	case Uint32:
		return "Uint32"
	case Uint64:
		return "Uint64"
	case Custom:
		return "Custom"
	default:
		return "Unknown"
	}
}

// Default returns the category-default value read back from an empty block
// (spec.md section 4.2's default table).
func Default(c Category) any {
	switch c {
	case Float64:
		return float64(0)
	case Bool:
		return false
	case String:
		return ""
	case Int8:
		return int8(0)
	case Int16:
		return int16(0)
	case Int32:
		return int32(0)
	case Int64:
		return int64(0)
	case Uint8:
		return uint8(0)
	case Uint16:
		return uint16(0)
	case Uint32:
		return uint32(0)
	case Uint64:
		return uint64(0)
	case Custom:
		return nil
	default:
		return nil
	}
}

// Of maps a Go value to its element category. Returns Custom for any type
// not among the built-in categories, so callers can always store a value
// somewhere rather than fail closed.
func Of(v any) Category {
	switch v.(type) {
	case float64:
		return Float64
	case bool:
		return Bool
	case string:
		return String
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	default:
		return Custom
	}
}
