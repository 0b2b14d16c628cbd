// Package kernel provides the domain primitives shared across the dispatch model.
//
// UUID is the only primitive: an immutable, comparable identifier used as the
// tracking id of every shipment and therefore as the key of the delivery store.
// Being a comparable struct it can be used directly as a map key.
package kernel
