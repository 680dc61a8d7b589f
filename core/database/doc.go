// Package database provides the optional MySQL connection used to persist
// migration runs. The pipeline itself never requires a database; the sink is
// an audit trail, so callers treat connection failures as warnings.
package database
