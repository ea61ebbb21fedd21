// Package rewrite applies plugin-policy attribute rules to parsed
// documents: deprecated keys abort the build, retired keys are stripped,
// and derived keys are inserted when a component calls for them.
package rewrite

import (
	"fmt"

	"github.com/svetikas/ttbuild/internal/document"
)

// Rule is one attribute policy applied to a component object. Rules are
// stateless; a rule list is applied in declared order, each rule seeing the
// output of the previous one.
type Rule interface {
	Name() string
	Apply(obj *document.Object) error
}

// DeprecatedAttributeError reports a key that must not ship. Location names
// the offending component, taken from its "id" attribute when present.
type DeprecatedAttributeError struct {
	Key      string
	Location string
	Hint     string
}

func (e *DeprecatedAttributeError) Error() string {
	msg := fmt.Sprintf("deprecated attribute %q in %s", e.Key, e.Location)
	if e.Hint != "" {
		msg += ": " + e.Hint
	}
	return msg
}

// RejectKey fails rewriting when a deprecated key is present.
type RejectKey struct {
	Key  string
	Hint string
}

func (r RejectKey) Name() string { return "reject " + r.Key }

func (r RejectKey) Apply(obj *document.Object) error {
	if obj.Has(r.Key) {
		return &DeprecatedAttributeError{Key: r.Key, Location: objectID(obj), Hint: r.Hint}
	}
	return nil
}

// StripKey removes a key when present. Absence is not an error.
type StripKey struct {
	Key string
}

func (r StripKey) Name() string { return "strip " + r.Key }

func (r StripKey) Apply(obj *document.Object) error {
	obj.Delete(r.Key)
	return nil
}

// Predicate decides whether a ConditionalInsert fires for an object.
type Predicate func(obj *document.Object) bool

// ConditionalInsert adds Key with Value when the predicate holds and the
// key is absent. An explicit value set by the author is never overwritten,
// so applying the rule twice changes nothing.
type ConditionalInsert struct {
	Key   string
	Value *document.Value
	When  Predicate
}

func (r ConditionalInsert) Name() string { return "insert " + r.Key }

func (r ConditionalInsert) Apply(obj *document.Object) error {
	if r.When != nil && !r.When(obj) {
		return nil
	}
	if obj.Has(r.Key) {
		return nil
	}
	obj.Set(r.Key, r.Value)
	return nil
}

// HasAnyKey builds a predicate that holds when any of the given keys is
// present on the object.
func HasAnyKey(keys ...string) Predicate {
	return func(obj *document.Object) bool {
		for _, key := range keys {
			if obj.Has(key) {
				return true
			}
		}
		return false
	}
}

func objectID(obj *document.Object) string {
	if id := obj.Get("id"); id != nil && id.Kind == document.KindString {
		return id.Str
	}
	return "unknown id"
}
