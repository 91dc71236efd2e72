package chart

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/heartmarshall/chartboard-backend/internal/domain"
)

const (
	categoryLen      = 50
	countCategoryLen = 30
	countRowLimit    = 10
	noDataMessage    = "No data available"
)

// Project turns remote rows into categories and series. It never fails:
// data that cannot be charted degrades to a "Count" chart.
//
// When the rows mix numeric and non-numeric columns, the first non-numeric
// column labels the categories and every numeric column becomes a series.
// With numeric columns only, the first one labels the categories and the
// rest become series. Anything else is charted as one count per row for the
// first rows.
func Project(rs domain.ResultSet) domain.Chart {
	if len(rs.Rows) == 0 {
		return domain.Chart{Categories: []string{}, Series: []domain.Series{}, Message: noDataMessage}
	}

	columns := rs.Columns
	if len(columns) == 0 {
		columns = slices.Sorted(maps.Keys(rs.Rows[0]))
	}

	var numeric, text []string
	for _, col := range columns {
		if isNumericColumn(rs.Rows, col) {
			numeric = append(numeric, col)
		} else {
			text = append(text, col)
		}
	}

	switch {
	case len(numeric) > 0 && len(text) > 0:
		return byLabel(rs.Rows, text[0], numeric)
	case len(numeric) >= 2:
		return byNumericLabel(rs.Rows, numeric)
	default:
		return countChart(rs.Rows, columns)
	}
}

func byLabel(rows []map[string]any, label string, numeric []string) domain.Chart {
	categories := make([]string, len(rows))
	for i, row := range rows {
		categories[i] = truncate(stringify(row[label]), categoryLen)
	}
	series := make([]domain.Series, 0, len(numeric))
	for _, col := range numeric {
		series = append(series, seriesOf(rows, col))
	}
	return domain.Chart{Categories: categories, Series: series}
}

func byNumericLabel(rows []map[string]any, numeric []string) domain.Chart {
	categories := make([]string, len(rows))
	for i, row := range rows {
		c := stringify(row[numeric[0]])
		if c == "" {
			c = "Item " + strconv.Itoa(i+1)
		}
		categories[i] = c
	}

	series := make([]domain.Series, 0, len(numeric)-1)
	for _, col := range numeric[1:] {
		series = append(series, seriesOf(rows, col))
	}
	if len(series) == 0 {
		series = append(series, seriesOf(rows, numeric[0]))
	}
	return domain.Chart{Categories: categories, Series: series}
}

func countChart(rows []map[string]any, columns []string) domain.Chart {
	n := min(len(rows), countRowLimit)
	categories := make([]string, n)
	values := make([]float64, n)
	for i := range n {
		var c string
		if len(columns) > 0 {
			c = truncate(stringify(rows[i][columns[0]]), countCategoryLen)
		}
		if c == "" {
			c = "Row " + strconv.Itoa(i+1)
		}
		categories[i] = c
		values[i] = 1
	}
	return domain.Chart{
		Categories: categories,
		Series:     []domain.Series{{Name: "Count", Values: values}},
	}
}

func seriesOf(rows []map[string]any, col string) domain.Series {
	values := make([]float64, len(rows))
	for i, row := range rows {
		if v, ok := toNumber(row[col]); ok {
			values[i] = v
		}
	}
	return domain.Series{Name: col, Values: values}
}

func isNumericColumn(rows []map[string]any, col string) bool {
	for _, row := range rows {
		if _, ok := toNumber(row[col]); ok {
			return true
		}
	}
	return false
}

// toNumber accepts native numbers and strings that parse in full as a
// finite float.
func toNumber(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
