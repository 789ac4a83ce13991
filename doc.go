// Package wealthguard provides the domain types and the derived-metrics engine of a
// personal investment dashboard. It follows a periodic-contribution strategy across a
// fixed set of index funds and keeps the ledger of a rental property.
//
// The core functionalities include:
//   - Static configuration: the tracked instruments with their target allocation, the
//     time-boxed wealth goals, the contribution strategy and the mantras.
//   - Records: transactions, portfolio history points, properties with their incomes and
//     expenses, and the latest price quotes, as persisted by the store package.
//   - Derived metrics: a stateless engine that turns those records into the dashboard's
//     display model (distribution against target, rebalancing signal and suggested
//     trades, totals, goal progress, property yield, monthly aggregation).
//
// Importing files, persisting records and refreshing quotes are handled by the
// importer, store and quotes packages. This package never performs I/O.
package wealthguard
