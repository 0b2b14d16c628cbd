// Package services contains domain services that don't naturally fit within entities.
// ProviderDispatcher decides which delivery provider ships an order.
package services
