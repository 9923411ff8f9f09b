// Package services contains the pure domain services of the shipping pipeline:
// address resolution, parcel construction, customs declaration building, and
// rate selection. None of them perform I/O or mutate their inputs, so they can
// be exercised in isolation without fakes.
//
// The address heuristics are deliberately permissive: ambiguous input degrades
// to best-effort fields rather than an error, leaving final address validation
// to the carrier-aggregation service.
package services
