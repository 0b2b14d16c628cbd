// Package delivery models the shipment side of the dispatch service: which provider
// carries an order, the status of every tracked shipment and the events emitted as
// shipments move through their lifecycle.
//
// The package includes:
//   - Provider: the closed set of interchangeable delivery providers (Uber, Uklon)
//   - Status: the one-directional shipment state machine
//   - Record: the immutable value stored per tracking id in the delivery store
//   - Shipment: a single dispatch attempt of a named order
//   - Event: the structured signal published on every lifecycle step
//
// Lifecycle of a tracking id:
//
//	[created] --ship--> Ongoing --delay elapses--> Finished --sweep--> Archived --retention--> [deleted]
//
// No transition skips a stage and none reverses; every transition refreshes the
// record's UpdatedAt, which is the only input to the retention window.
package delivery
