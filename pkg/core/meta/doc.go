// Package meta flattens the metadata dictionaries that accompany a Figma
// document into narrow, normalized records.
//
// Each function projects one dictionary-of-records onto a fixed set of
// fields. References between records (component to component set, variable
// to collection, reply to parent comment) are carried as plain ids and are
// never checked: a component whose set is missing is still emitted in full.
// Fields absent from the source, or present with an unexpected type,
// serialize as null.
package meta
