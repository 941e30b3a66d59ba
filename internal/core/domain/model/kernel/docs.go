// Package kernel provides the value objects shared by the job-order domain.
//
// The package includes:
//   - Amount helpers: validation and rounding for monetary decimals
//   - Measurements: the six tailoring dimensions carried by materials and order measurements
//
// Values are immutable and validated on construction, so a domain object holding
// one never needs to re-check its bounds.
package kernel
