package formats

import (
	"errors"

	"stock-migrator/core/pos"

	"go.uber.org/zap"
)

// GroupFunc consumes the rows of one logical record starting at *cursor and
// returns the normalized entity, leaving the cursor on the first row of the
// next record. It returns ErrEndOfInput when no rows remain.
type GroupFunc[R any, T any] func(rows []R, cursor *int, agg *pos.Aggregate, log *zap.Logger) (T, error)

// ParseGroups drives a GroupFunc over a file's rows until end of input.
// Row-level failures are logged and skipped; only ErrEndOfInput stops the
// loop. Group funcs guarantee cursor progress on every failure path, so the
// loop always terminates.
func ParseGroups[R any, T any](rows []R, agg *pos.Aggregate, log *zap.Logger, parse GroupFunc[R, T]) []T {
	cursor := 0
	var items []T

	for {
		item, err := parse(rows, &cursor, agg, log)
		if err != nil {
			if errors.Is(err, ErrEndOfInput) {
				return items
			}
			log.Warn("skipping malformed record",
				zap.Int("row", cursor),
				zap.Error(err),
			)
			continue
		}
		items = append(items, item)
	}
}
