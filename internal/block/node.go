package block

import (
	"fmt"
	"strconv"
	"strings"
)

// Pos is a source position. Line and Column are 1-based; zero means the
// coordinate is not available (TSV rows have no column information).
type Pos struct {
	Line   int
	Column int
}

// Known reports whether the position carries at least a line number.
func (p Pos) Known() bool {
	return p.Line > 0
}

// ValueKind discriminates the variants of a field value.
type ValueKind int

const (
	// StringValue through NullValue are the scalar kinds the grammar allows.
	StringValue ValueKind = iota
	BoolValue
	IntValue
	FloatValue
	NullValue

	// MappingValue and ListValue mark nested structures. They are invalid in
	// a record and exist only so the no_substructures lint can point at them.
	MappingValue
	ListValue
)

// String returns the kind name used in diagnostic messages.
func (k ValueKind) String() string {
	switch k {
	case StringValue:
		return "string"
	case BoolValue:
		return "bool"
	case IntValue:
		return "int"
	case FloatValue:
		return "float"
	case NullValue:
		return "null"
	case MappingValue:
		return "mapping"
	case ListValue:
		return "list"
	default:
		return "unknown"
	}
}

// Value is a tagged scalar variant with an optional source position.
// Exactly one payload field is meaningful, selected by Kind.
type Value struct {
	Kind  ValueKind
	Str   string
	Bool  bool
	Int   int64
	Float float64
	Pos   Pos
}

// String creates a string value.
func String(s string) Value { return Value{Kind: StringValue, Str: s} }

// Bool creates a boolean value.
func Bool(b bool) Value { return Value{Kind: BoolValue, Bool: b} }

// Int creates an integer value.
func Int(i int64) Value { return Value{Kind: IntValue, Int: i} }

// Float creates a floating-point value.
func Float(f float64) Value { return Value{Kind: FloatValue, Float: f} }

// Null creates an absent/null value.
func Null() Value { return Value{Kind: NullValue} }

// At returns a copy of the value annotated with a source position.
func (v Value) At(line, column int) Value {
	v.Pos = Pos{Line: line, Column: column}
	return v
}

// IsNull reports whether the value is absent.
func (v Value) IsNull() bool { return v.Kind == NullValue }

// IsNested reports whether the value is a nested mapping or list, which the
// flat grammar forbids inside records.
func (v Value) IsNested() bool {
	return v.Kind == MappingValue || v.Kind == ListValue
}

// Render converts the value to its TSV cell representation. The switch is
// total over the scalar kinds: true renders as "TRUE", false as "FALSE",
// null as the empty string. Nested values render empty; they never survive
// validation.
func (v Value) Render() string {
	switch v.Kind {
	case StringValue:
		return v.Str
	case BoolValue:
		if v.Bool {
			return "TRUE"
		}
		return "FALSE"
	case IntValue:
		return strconv.FormatInt(v.Int, 10)
	case FloatValue:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case NullValue, MappingValue, ListValue:
		return ""
	default:
		return ""
	}
}

// Equal compares values by content only, ignoring positions.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case StringValue:
		return v.Str == other.Str
	case BoolValue:
		return v.Bool == other.Bool
	case IntValue:
		return v.Int == other.Int
	case FloatValue:
		return v.Float == other.Float
	default:
		return true
	}
}

// GoString prints the value content without its position, keeping test
// failure output stable across input syntaxes.
func (v Value) GoString() string {
	return fmt.Sprintf("block.Value(%s:%q)", v.Kind, v.Render())
}

// Field is a single name/value pair inside a record.
type Field struct {
	Name  string
	Value Value
}

// Record is a flat, ordered mapping of field names to values. Field order
// follows the source document.
type Record struct {
	Fields []Field
	Pos    Pos
}

// Get returns the value for a field name and whether it is present.
func (r Record) Get(name string) (Value, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Has reports whether a field name is present.
func (r Record) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Names returns the field names in source order.
func (r Record) Names() []string {
	names := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		names[i] = f.Name
	}
	return names
}

// Len returns the number of fields in the record.
func (r Record) Len() int { return len(r.Fields) }

// Block is the value of one section: an ordered list of records. IsList is
// false when the source document put something other than a list under the
// section keyword; the records are then empty and block_is_list reports the
// defect at Pos.
type Block struct {
	Records []Record
	IsList  bool
	Pos     Pos
}

// Section pairs a section keyword with its block.
type Section struct {
	Keyword string
	Block   Block
}

// Document is the root node: an ordered mapping from section keyword to
// block. Keys are a subset of the fixed keyword set, each present at most
// once; a duplicate keyword is a parse failure, not a Document state.
type Document struct {
	Sections []Section
}

// Keywords returns the section keywords in document order.
func (d *Document) Keywords() []string {
	kws := make([]string, len(d.Sections))
	for i, s := range d.Sections {
		kws[i] = s.Keyword
	}
	return kws
}

// Section returns the block stored under a keyword.
func (d *Document) Section(keyword string) (Block, bool) {
	for _, s := range d.Sections {
		if s.Keyword == keyword {
			return s.Block, true
		}
	}
	return Block{}, false
}

// Describe returns a short human-readable identifier for a record, used in
// lint messages. Vocabulary records are identified by the field they refine,
// everything else by its name.
func Describe(r Record, keyword string) string {
	key := "name"
	if keyword == KeywordControlledVocabulary {
		key = "DatasetField"
	}
	if v, ok := r.Get(key); ok {
		return v.Render()
	}
	if len(r.Fields) > 0 {
		return fmt.Sprintf("<entry with keys %s>", strings.Join(r.Names(), ", "))
	}
	return "<empty entry>"
}
