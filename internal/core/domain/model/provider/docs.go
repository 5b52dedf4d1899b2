// Package provider implements the provider profile aggregate: the provider's
// city, the set of catalog services they offer and their per-service prices.
//
// Key business rules:
//   - one profile per provider user
//   - every offered service has exactly one price entry, services no longer
//     offered have none (restored by SyncPrices after each change of the set)
//   - SetPrices is all-or-nothing: a single unknown service or non-positive
//     price rejects the whole batch
package provider
