// Package providers implements the delivery providers the dispatcher can choose from.
//
// Shipping is simulated: there is no network call. A provider inserts an Ongoing
// record, draws a transit delay from its DelayRange and schedules a supervised task
// that marks the record Finished once the delay elapses. Uber and Uklon share one
// implementation, Simulated, parameterised by provider kind and delay range.
//
// Registry maps every provider kind to its implementation and is checked for
// completeness at construction, so resolving a valid kind can never fail.
package providers
