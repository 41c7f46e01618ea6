// Package cli implements the interactive PensUp client: a line-oriented
// REPL over the session controller, the profile repository, the creator
// resolver and the published-works ledger.
//
// The REPL loop itself (runREPL) is decoupled from App through the
// execIface interface so command dispatch can be tested with a stub, and
// all user-facing output goes through the printlnFn seam.
package cli
