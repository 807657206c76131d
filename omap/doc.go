// Package omap provides an ordered map: keys are kept sorted by a
// strict weak ordering chosen when the map is created, and the map
// can be walked in either direction with STL-style iterators.
//
// The map is backed by an AA-tree (see package tree/aa), so lookup,
// insertion and removal take O(log n) time. A Map is not safe for
// concurrent use.
//
// Iterators denote a (map, node) position. They are invalidated
// when their entry is erased, when the map is cleared or assigned
// to, and also, because of how removal works, whenever any entry is
// erased: a surviving iterator may find itself on a different key.
// Only Erase checks for a stale iterator; other operations on one
// are undefined.
package omap
