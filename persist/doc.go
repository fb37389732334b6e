// SPDX-License-Identifier: MIT

// Package persist saves and restores trees of objects as YAML records.
//
// Every persisted type implements Object: a stable type tag plus a Serialize
// method that reads or writes its scalar fields through a Visitor. The same
// Serialize method serves both directions; Visitor.Loading tells which one is
// running.
//
// Types that own child objects implement Parent. Children are grouped by name
// ("nodes", "links", ...) and restored group by group in ChildGroups order.
// After its children are adopted, an object that implements Fixer gets a
// PostLoad call to rebuild derived state (indexes, cross references).
//
// Reconstruction is tag driven: a Registry maps each tag to a Factory that
// returns a fresh, empty instance.
//
// Objects whose fields only make sense next to their siblings implement
// Dependent and are rejected at the top of a document. Encoding only reads the
// tree, so one tree may be saved from several goroutines at once.
//
// Record layout:
//
//	type: NavigationNetwork
//	children:
//	  nodes:
//	    - type: NavigationNode
//	      fields: {x: 0, y: 0, z: 0}
//	  links:
//	    - type: Link
//	      fields: {source: 0, dest: 1, weight: 2}
//
// Errors:
//
//	ErrUnknownType    - record tag has no registered factory.
//	ErrDuplicateType  - tag registered twice.
//	ErrMissingField   - a loading Visitor was asked for an absent key.
//	ErrFieldType      - a field holds a value of the wrong kind.
//	ErrNotParent      - record has children but the object cannot adopt them.
//	ErrNeedsParent    - a Dependent object at the top level.
//	ErrNilObject      - nil object or record.
package persist
