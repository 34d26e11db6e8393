// Package livequery keeps query results in sync with the underlying
// tables. A query is observed by running it once under dependency
// capture (recording which tables it reads), then re-running it
// whenever the change bus reports a write to any of those tables.
// Re-deliveries are coalesced and always arrive in execution order.
package livequery
