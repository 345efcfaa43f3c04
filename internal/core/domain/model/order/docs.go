// Package order contains the Order aggregate and its lifecycle state
// machine. An order carries one sample batch from a collection center to a
// receiving hospital; its status moves strictly forward along the lifecycle
// DAG, every transition is timestamped, and each transition produces exactly
// one custody ledger event.
package order
