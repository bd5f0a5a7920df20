// Package poverty maintains a single "Poverty JSON" document describing a
// personal ledger: transactions, currencies, pools (accounts holding money),
// and budgets with their sub-accounts.
//
// The package is built around an integrity engine. A document is validated
// once when an engine is constructed (schema, identifier uniqueness,
// referential links), and every mutation afterwards goes through a typed
// CRUD operation that keeps those invariants true, including in-use
// protection on delete.
//
// File load/save, the HTTP endpoint and the CLI are thin adapters living in
// cmd; they call into the engine with a parsed document and receive back a
// mutated document or a typed failure.
package poverty
