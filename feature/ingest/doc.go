// Package ingest drives whole migration runs: classify a directory of vendor
// export files, parse them in dependency order into one shared aggregate, and
// deliver the result to the output file and optional sinks (object storage,
// database).
package ingest
