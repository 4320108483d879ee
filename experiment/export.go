package experiment

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// identityColumns come first in every export, in this fixed order.
var identityColumns = []string{
	"experiment_id",
	"seed_level",
	"master_seed",
	"seed",
	"sub_seed",
	"current_seed",
	"sampling_method",
	"task",
	"timestamp",
}

// Column name prefixes for the variable parts of a row.
const (
	metricPrefix = "metric_"
	metaPrefix   = "meta_"
)

// Export serializes all stored results to w, row per result, with a
// deterministic column order: identity fields, then metric columns
// sorted by name, then metadata columns sorted by name.
// Complexity: O(results x columns).
func (r *Registry) Export(w io.Writer, f Format) error {
	results := r.Results()
	metricCols, metaCols := collectColumns(results)

	switch f {
	case CSV:
		return exportCSV(w, results, metricCols, metaCols)
	case JSON:
		return exportJSON(w, results, metricCols, metaCols)
	case YAML:
		return exportYAML(w, results, metricCols, metaCols)
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedFormat, f)
	}
}

// collectColumns gathers the union of metric and metadata names across
// all results, sorted lexicographically.
func collectColumns(results []Result) (metricCols, metaCols []string) {
	metricSet := make(map[string]struct{})
	metaSet := make(map[string]struct{})
	for _, res := range results {
		for name := range res.Metrics {
			metricSet[name] = struct{}{}
		}
		for name := range res.Metadata {
			metaSet[name] = struct{}{}
		}
	}

	for name := range metricSet {
		metricCols = append(metricCols, name)
	}
	for name := range metaSet {
		metaCols = append(metaCols, name)
	}
	sort.Strings(metricCols)
	sort.Strings(metaCols)
	return metricCols, metaCols
}

// identityValues extracts the fixed leading fields of one row.
// Positional lineage fields absent at the result's level stay nil.
func identityValues(res Result) map[string]any {
	row := map[string]any{
		"experiment_id":   res.ExperimentID,
		"seed_level":      res.Level,
		"master_seed":     res.Lineage[0],
		"current_seed":    res.Seed(),
		"sampling_method": res.Method.String(),
		"task":            res.Task,
		"timestamp":       res.Timestamp.Format(time.RFC3339),
	}
	row["seed"] = nil
	row["sub_seed"] = nil
	if len(res.Lineage) > 1 {
		row["seed"] = res.Lineage[1]
	}
	if len(res.Lineage) > 2 {
		row["sub_seed"] = res.Lineage[2]
	}
	return row
}

func exportCSV(w io.Writer, results []Result, metricCols, metaCols []string) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(identityColumns)+len(metricCols)+len(metaCols))
	header = append(header, identityColumns...)
	for _, name := range metricCols {
		header = append(header, metricPrefix+name)
	}
	for _, name := range metaCols {
		header = append(header, metaPrefix+name)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("experiment: write csv header: %w", err)
	}

	for _, res := range results {
		id := identityValues(res)
		row := make([]string, 0, len(header))
		for _, col := range identityColumns {
			row = append(row, csvCell(id[col]))
		}
		for _, name := range metricCols {
			if v, ok := res.Metrics[name]; ok {
				row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
			} else {
				row = append(row, "")
			}
		}
		for _, name := range metaCols {
			if v, ok := res.Metadata[name]; ok {
				row = append(row, csvCell(v))
			} else {
				row = append(row, "")
			}
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("experiment: write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// csvCell renders one value for CSV; nil becomes the empty cell.
func csvCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

// rowMap builds the generic row used by the structured encoders. Absent
// metric/metadata columns are omitted rather than zero-filled; encoders
// order keys lexicographically, which keeps the output deterministic.
func rowMap(res Result, metricCols, metaCols []string) map[string]any {
	row := identityValues(res)
	for _, name := range metricCols {
		if v, ok := res.Metrics[name]; ok {
			row[metricPrefix+name] = v
		}
	}
	for _, name := range metaCols {
		if v, ok := res.Metadata[name]; ok {
			row[metaPrefix+name] = v
		}
	}
	return row
}

func exportJSON(w io.Writer, results []Result, metricCols, metaCols []string) error {
	rows := make([]map[string]any, 0, len(results))
	for _, res := range results {
		rows = append(rows, rowMap(res, metricCols, metaCols))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("experiment: encode json: %w", err)
	}
	return nil
}

func exportYAML(w io.Writer, results []Result, metricCols, metaCols []string) error {
	rows := make([]map[string]any, 0, len(results))
	for _, res := range results {
		rows = append(rows, rowMap(res, metricCols, metaCols))
	}

	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("experiment: encode yaml: %w", err)
	}
	return nil
}
