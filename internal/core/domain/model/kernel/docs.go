// Package kernel provides the shared value objects of the marketplace domain.
//
// The package includes:
//   - UUID: identifier of every entity and aggregate
//   - Price: non-negative money amount held in minor units (cents)
//   - City: free-text provider location compared case-insensitively
//
// Values are immutable; their zero values are invalid and rejected by Validate.
package kernel
