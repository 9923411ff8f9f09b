// Package shipping defines the records exchanged with the carrier-aggregation
// service and persisted back onto orders: addresses, parcels, customs paperwork,
// shipments, rates, label transactions, and the per-order shipping result.
//
// Unlike the engine's commands, these types are plain serializable records. They
// cross two boundaries as JSON — the carrier REST API and the order store's
// result column — so they carry exported fields with json tags and are treated
// as immutable once produced: rates are only filtered and sorted, addresses are
// never mutated after resolution, and each processing attempt builds a fresh
// Shipment rather than retrying a mutated one.
package shipping
