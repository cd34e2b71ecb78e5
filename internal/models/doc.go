// Package models defines the core domain entities for the expense tracker.
//
// # Entities
//
//   - User: registered account; owns categories and groups
//   - Category: owner-scoped label for transactions and budgets
//   - Budget: monthly spending target per (owner, category)
//   - Transaction: a single expense or income under a category
//   - Group: a set of users sharing expenses
//   - GroupTransaction: one beneficiary's share of a group-paid expense,
//     derived from a parent Transaction
//
// # Design principles
//
//  1. IDs are database-generated int64 values; zero means "not yet persisted".
//  2. Monetary amounts are money.Cents so sums and splits stay exact.
//  3. Dates are calendar dates in YYYY-MM-DD form, no time-of-day.
//  4. Validation rules (lengths, formats, ranges) live as declarative tags on
//     the service-layer request types that create or update these entities.
package models
