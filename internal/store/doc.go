// Package store persists macropad configurations.
//
// A configuration lives in a single YAML file, by default mapping.yaml next
// to the executable. Reading a path that does not exist first writes a
// factory-default configuration there, so a fresh install always starts
// from a working file. Serialization is deterministic: fields keep their
// struct order and array elements are written one per line.
//
// The Watcher notifies callers when the file changes on disk, so a running
// session can revalidate without polling.
package store
