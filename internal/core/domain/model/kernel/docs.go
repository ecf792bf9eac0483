// Package kernel contains shared value objects used across the appraise domain model.
//
// The package currently provides:
//   - Price: an exact-precision, non-negative money amount backed by shopspring/decimal
//
// Value objects in this package are immutable, validate themselves on construction
// and expose a Validate method so aggregates restored from persistence can verify
// they were built through a constructor rather than as zero values.
package kernel
