package project

// DocumentKind selects the parser used for a configuration document.
type DocumentKind int

const (
	// KindJSON is JSON that may contain // and /* */ comments.
	KindJSON DocumentKind = iota
	// KindYAML is a YAML document.
	KindYAML
)

// String returns the name of the document kind.
func (k DocumentKind) String() string {
	switch k {
	case KindJSON:
		return "json"
	case KindYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Document is a parsed configuration document or the absent marker.
// The zero value is absent.
type Document struct {
	value   any
	present bool
}

// Absent returns a document that was not found or could not be parsed.
func Absent() Document {
	return Document{}
}

// NewDocument wraps a parsed value as a present document.
func NewDocument(value any) Document {
	return Document{value: value, present: true}
}

// Present reports whether the document was read and parsed.
func (d Document) Present() bool {
	return d.present
}

// Value returns the parsed value, or nil when absent.
func (d Document) Value() any {
	return d.value
}

// Lookup walks nested objects by key. It returns false when the document is
// absent or any key along the path is missing.
func (d Document) Lookup(path ...string) (any, bool) {
	if !d.present {
		return nil, false
	}
	cur := d.value
	for _, key := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Object returns the object at path. With no path it returns the document root.
func (d Document) Object(path ...string) (map[string]any, bool) {
	v, ok := d.Lookup(path...)
	if !ok {
		return nil, false
	}
	obj, ok := v.(map[string]any)
	return obj, ok
}

// String returns the string at path.
func (d Document) String(path ...string) (string, bool) {
	v, ok := d.Lookup(path...)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
