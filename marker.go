package godto

// Requiredness classifies how a mapping field behaves when its source key is
// absent from the input.
type Requiredness int

const (
	// FieldRequired reports a missing source key as an error.
	FieldRequired Requiredness = iota
	// FieldOptional skips a missing source key silently.
	FieldOptional
	// FieldInclusive behaves like FieldOptional during evaluation; the monitor
	// group is advisory bookkeeping consumed by tooling such as mock
	// generation, never an enforced cross-field constraint.
	FieldInclusive
)

// Marker describes one mapping field: the source key to read, the target key
// to write the converted value under (defaults to the source key), and the
// field's requiredness. Markers are comparable and serve as keys in dsl.Map
// literals. Two markers with the same source name inside one mapping are a
// schema-authoring error.
type Marker struct {
	name   string
	target string
	kind   Requiredness
	group  string
}

// Required declares a field whose absence is a validation error.
func Required(name string) Marker { return Marker{name: name, kind: FieldRequired} }

// Optional declares a field that may be absent.
func Optional(name string) Marker { return Marker{name: name, kind: FieldOptional} }

// Inclusive declares an optional field tagged with a monitor group.
func Inclusive(name, group string) Marker {
	return Marker{name: name, kind: FieldInclusive, group: group}
}

// As returns a copy of the marker whose converted value is written under
// target instead of the source name.
func (m Marker) As(target string) Marker {
	m.target = target
	return m
}

// Name returns the source key.
func (m Marker) Name() string { return m.name }

// Target returns the key the converted value is written under.
func (m Marker) Target() string {
	if m.target == "" {
		return m.name
	}
	return m.target
}

// Kind returns the marker's requiredness.
func (m Marker) Kind() Requiredness { return m.kind }

// Group returns the monitor group of an Inclusive marker, "" otherwise.
func (m Marker) Group() string { return m.group }
