// Package formats holds the vendor format registry and the shared parsing
// machinery of the migration pipeline.
//
// A vendor is registered with two tables: a header function that yields the
// canonical header template for each entity type (used by the classifier for
// edit-distance scoring), and a parser per entity type that converts one
// file's rows into normalized entities appended to the aggregate.
//
// # Row groups
//
// Vendor exports flatten one logical record over several physical rows (a
// product spans one row per variant). Parsers are therefore cursor driven:
// one call consumes the rows of exactly one entity and leaves the cursor on
// the first row of the next record. End of input is signalled with the
// ErrEndOfInput sentinel, which is control flow rather than an error;
// genuine row problems are reported as ReadFailure or FormatFailure and the
// group loop skips past them.
package formats
