// Package document models parsed plugin JSON as a structural value that
// preserves object key order and numeric text exactly, so serializing a
// parsed document never reorders keys or reformats numbers.
package document

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// Value is one node of a parsed document. String and number content is kept
// as the raw text between the source tokens (escape sequences intact), which
// makes serialization a byte-for-byte pass-through.
type Value struct {
	Kind Kind
	Bool bool
	Num  string   // raw numeric text, KindNumber only
	Str  string   // raw string body without quotes, KindString only
	Arr  []*Value // KindArray only
	Obj  *Object  // KindObject only
}

// Object is an ordered mapping of string keys to values. Insertion order is
// kept explicitly rather than relying on map iteration order.
type Object struct {
	keys   []string
	values map[string]*Value
}

// NewObject returns an empty ordered object.
func NewObject() *Object {
	return &Object{values: make(map[string]*Value)}
}

// Len returns the number of entries.
func (o *Object) Len() int {
	return len(o.keys)
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	return o.keys
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// Get returns the value for key, or nil when absent.
func (o *Object) Get(key string) *Value {
	return o.values[key]
}

// Set stores value under key. A repeated key keeps its original position
// and the value is replaced (last write wins).
func (o *Object) Set(key string, value *Value) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Delete removes key if present.
func (o *Object) Delete(key string) {
	if _, ok := o.values[key]; !ok {
		return
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// Convenience constructors used by rewrite rules and tests.

// Null returns a null value.
func Null() *Value { return &Value{Kind: KindNull} }

// True returns a boolean true value.
func True() *Value { return &Value{Kind: KindBool, Bool: true} }

// False returns a boolean false value.
func False() *Value { return &Value{Kind: KindBool, Bool: false} }

// String returns a string value holding raw body s.
func String(s string) *Value { return &Value{Kind: KindString, Str: s} }

// Number returns a number value holding raw text n.
func Number(n string) *Value { return &Value{Kind: KindNumber, Num: n} }
