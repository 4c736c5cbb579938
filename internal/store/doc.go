// Package store defines the persistence ports of the application: the
// interfaces through which services read and write teacher profiles,
// assignments and students, the errors those operations return, and a small
// helper for running work inside a database transaction. Implementations live
// in internal/platform/postgres.
package store
