// Package inmemory provides map-backed implementations of the repository
// interfaces. They mirror the postgresql package's contract, including
// pgx.ErrNoRows for missing rows, so services behave identically against
// either. The service test suites run on these.
package inmemory
