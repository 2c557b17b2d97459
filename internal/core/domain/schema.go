package domain

// Column describes a single relational column as reported by the catalog.
type Column struct {
	// Name is the column name.
	Name string `json:"name"`

	// Type is the catalog-declared data type.
	Type string `json:"type"`

	// Nullable reports whether the column accepts NULL.
	Nullable bool `json:"nullable"`

	// IsPrimaryKey reports primary-key constraint membership.
	IsPrimaryKey bool `json:"is_primary_key"`
}

// Table holds the columns of one table in ordinal order.
type Table struct {
	Columns []Column `json:"columns"`
}

// ForeignKey is a single foreign-key edge between two tables.
type ForeignKey struct {
	FromTable  string `json:"from_table"`
	FromColumn string `json:"from_column"`
	ToTable    string `json:"to_table"`
	ToColumn   string `json:"to_column"`
}

// SchemaGraph is the full structure of the relational store: every table
// with its columns, plus all foreign-key relations. Tables serialize in
// alphabetical order; relations keep catalog scan order. Callers must not
// assume any ordering beyond that.
type SchemaGraph struct {
	Tables    map[string]Table `json:"tables"`
	Relations []ForeignKey     `json:"relations"`
}

// DetailColumn is the extended per-column report used by table details.
// Pointer fields are null when the catalog reports no value.
type DetailColumn struct {
	Name      string  `json:"column_name"`
	Type      string  `json:"data_type"`
	Nullable  bool    `json:"is_nullable"`
	Default   *string `json:"column_default"`
	MaxLength *int64  `json:"character_maximum_length"`
	Precision *int64  `json:"numeric_precision"`
	Scale     *int64  `json:"numeric_scale"`
}

// TableDetail is the detailed column report for a single table. A table
// unknown to the catalog yields an empty Columns slice, not an error.
type TableDetail struct {
	Table   string         `json:"table"`
	Columns []DetailColumn `json:"columns"`
}
