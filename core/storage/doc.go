// Package storage provides an S3/Minio-backed object store client.
//
// Vendor export files can be staged in a bucket and pulled down before a
// migration run, and the produced aggregate can be pushed back up. The
// Client interface keeps the surface narrow so tests can substitute the
// testify mock in the mocks subpackage.
package storage
