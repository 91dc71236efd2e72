package domain

// ResultSet is the tabular output of executing a remote card. Rows keep the
// remote column order in Columns; each row maps a column name to its value.
type ResultSet struct {
	Columns []string
	Rows    []map[string]any
}

// Chart is the category/series shape consumed by chart widgets.
type Chart struct {
	Categories []string
	Series     []Series
	Message    string
}

// Series is one named line of values aligned with Chart.Categories.
type Series struct {
	Name   string
	Values []float64
}
