// Package classify fingerprints export files against the registered vendor
// header templates.
//
// Classification is fuzzy on purpose: vendors add and drop columns between
// export versions, so the header row is scored by edit distance against every
// (vendor, entity type) template and the lowest score wins. A file nothing
// matches well still gets the best-scoring pair; the parser for that pair
// then simply produces few or no records.
package classify

import (
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"go.uber.org/zap"

	"stock-migrator/feature/ingest/formats"
)

// VendorNone marks a file whose header matched no template at all (an empty
// or unreadable header). Such files are skipped by the builder.
const VendorNone = "none"

// Classification is the scored verdict for one file.
type Classification struct {
	Path   string             `json:"path"`
	Vendor string             `json:"vendor"`
	Entity formats.EntityType `json:"entity"`
	Score  int                `json:"score"`
}

// Classifier scores files against a registry's header templates.
type Classifier struct {
	registry *formats.Registry
	log      *zap.Logger
}

func NewClassifier(registry *formats.Registry, log *zap.Logger) *Classifier {
	return &Classifier{registry: registry, log: log}
}

// ClassifyFile scores one file's header row against every registered
// (vendor, entity type) template. Strictly lower scores win, so ties resolve
// to the first pair in registration/dependency order.
func (c *Classifier) ClassifyFile(path string) (Classification, error) {
	if strings.HasSuffix(path, formats.OutputSuffix) {
		return Classification{
			Path:   path,
			Vendor: VendorNone,
			Entity: formats.EntityInvalid,
		}, nil
	}

	best := Classification{
		Path:   path,
		Vendor: VendorNone,
		Entity: formats.EntityProduct,
		Score:  math.MaxInt,
	}

	// An unreadable header degrades to the sentinel just like an empty one,
	// so a single corrupted file cannot take down the whole run.
	header, err := formats.HeaderLine(path)
	if err != nil {
		c.log.Warn("failed to read file header",
			zap.String("path", path),
			zap.Error(err),
		)
		return best, nil
	}
	if header == "" {
		return best, nil
	}

	for _, vendor := range c.registry.Vendors() {
		for _, entity := range formats.ParseOrder() {
			score := levenshtein.ComputeDistance(header, c.registry.Header(vendor, entity))
			if score < best.Score {
				best.Vendor = vendor
				best.Entity = entity
				best.Score = score
			}
		}
	}

	c.log.Debug("classified file",
		zap.String("path", path),
		zap.String("vendor", best.Vendor),
		zap.String("entity", string(best.Entity)),
		zap.Int("score", best.Score),
	)

	return best, nil
}

// ClassifyDir walks a directory tree, classifies every regular file, and
// returns the results sorted by entity dependency order. The ordering is
// load-bearing: stores must be parsed before products can anchor stock, and
// customers before transactions can link to them.
func (c *Classifier) ClassifyDir(root string) ([]Classification, error) {
	var results []Classification

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		classification, err := c.ClassifyFile(path)
		if err != nil {
			return err
		}
		results = append(results, classification)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Entity.Rank() < results[j].Entity.Rank()
	})

	return results, nil
}
