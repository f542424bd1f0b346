// Package core defines the shared types used across the geolog toolkit.
//
// It provides the Level type for severity classification, the Entry
// type that represents a single log record, and the Field type for
// zero-allocation structured key-value pairs.
//
// Levels carry the numeric codes 0, 10, 20, 30, 40 and 50 used by the
// provisioning API, so a Level converts losslessly to and from the
// integer form callers may supply. ParseLevel and LevelFromCode
// validate their input and fail with ErrInvalidLevel before any logger
// state is touched.
//
// Entry objects are pooled via sync.Pool to keep the emit path
// allocation-free. Callers get an Entry with GetEntry and must return
// it with PutEntry once every sink has consumed it. The pool
// pre-allocates the Fields slice with capacity 8, which covers most
// log calls without triggering a slice growth.
//
// Field encodes values into fixed-size numeric fields (Int64, Float64)
// wherever possible so that common types like int, bool, and time.Time
// never escape to the heap. The Any field exists as a fallback for
// arbitrary types but will cause an allocation.
package core
