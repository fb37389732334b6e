// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Object/Parent/Fixer/Visitor contracts, Record, sentinel errors.

package persist

import "errors"

// Sentinel errors for persistence operations.
var (
	// ErrUnknownType indicates a record tag with no registered factory.
	ErrUnknownType = errors.New("persist: unknown type")

	// ErrDuplicateType indicates a second registration for the same tag.
	ErrDuplicateType = errors.New("persist: type already registered")

	// ErrMissingField indicates a loading visitor was asked for an absent key.
	ErrMissingField = errors.New("persist: missing field")

	// ErrFieldType indicates a field value of the wrong kind.
	ErrFieldType = errors.New("persist: field has wrong type")

	// ErrNotParent indicates a record with children whose object cannot adopt them.
	ErrNotParent = errors.New("persist: object does not accept children")

	// ErrNilObject indicates a nil object or record was passed in.
	ErrNilObject = errors.New("persist: nil object")

	// ErrNeedsParent indicates a Dependent object at the top of a document.
	ErrNeedsParent = errors.New("persist: object is only valid inside a parent")
)

// Object is a persistable value.
type Object interface {
	// TypeName returns the stable tag used to pick a factory on load.
	TypeName() string

	// Serialize reads or writes the object's scalar fields through v.
	Serialize(v Visitor) error
}

// Parent is an Object that owns named groups of child objects.
type Parent interface {
	Object

	// ChildGroups lists group names in the order they must be restored.
	ChildGroups() []string

	// Children returns the group's objects for writing.
	Children(group string) []Object

	// Adopt hands freshly loaded children of a group back to the parent.
	Adopt(group string, children []Object) error
}

// Fixer is implemented by objects that rebuild derived state after load.
// PostLoad runs once all of the object's children have been adopted.
type Fixer interface {
	PostLoad() error
}

// Dependent marks objects whose fields refer to their parent's state, such as
// positions in a sibling group. They are encoded and decoded only as children.
type Dependent interface {
	Object

	// NeedsParent reports whether the object may not stand alone.
	NeedsParent() bool
}

// Visitor moves scalar fields between an object and a record.
//
// Field methods never return errors directly; the first failure is retained
// and reported by Err, so Serialize implementations can visit every field and
// check once at the end.
type Visitor interface {
	// Loading is true when fields flow from the record into the object.
	Loading() bool

	Int(key string, v *int64)
	Float(key string, v *float64)
	String(key string, v *string)

	// Err returns the first error met by any field method.
	Err() error
}

// Record is the serialized form of one Object.
type Record struct {
	Type     string               `yaml:"type"`
	Fields   map[string]any       `yaml:"fields,omitempty"`
	Children map[string][]*Record `yaml:"children,omitempty"`
}
