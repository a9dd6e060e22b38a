// Package history stores executed requests in SQLite and ranks them for the
// history sidebar.
package history
