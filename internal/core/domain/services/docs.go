// Package services provides stateless domain services that compute values
// spanning several aggregates of the marketplace.
//
// The package includes:
//   - RatingAggregator: average review rating of a provider
//   - PriceResolver: effective price of a service for a provider and the
//     catalog's "starts from" price
//   - ProviderRanker: ordering of provider listings
package services
