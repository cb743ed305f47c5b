// Package finance provides the types and functions to keep a personal
// finance ledger: a flat, human-readable CSV file of dated income and expense
// transactions.
//
// The core functionalities include:
//   - Ledger Store: initializing, appending to and loading the ledger file
//     (see [Store]). The file is append-only, transactions are never updated
//     or deleted.
//   - Query Engine: a stateless set of functions that filter a ledger by an
//     inclusive date [Range], summarize income and expense, and derive the
//     daily series used for plotting.
//   - Validation: pure functions that turn user input into dates, amounts and
//     categories, so that interactive front-ends only have to loop on errors.
//
// This package serves as the foundational logic for the `fin` command-line
// tool.
package finance
