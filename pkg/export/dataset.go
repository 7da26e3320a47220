package export

// Dataset defines tabular export content. Rows address columns by header
// name so partially filled rows render as empty cells.
type Dataset struct {
	Headers []string
	Rows    []map[string]string
}
