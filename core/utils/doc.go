// Package utils provides common utility functions for the stock-migrator
// application. It includes tolerant conversions from raw export cell values
// to typed fields, and shared logic that doesn't fit into domain-specific
// packages.
package utils
