// Package queries contains the read side of the marketplace. Handlers run raw
// SQL through GORM and return flat read models shaped for the HTTP layer;
// they never load aggregates.
package queries
