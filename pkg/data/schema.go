package data

import "github.com/go-gota/gota/series"

// Column describes a single column of a dataset.
type Column struct {
	Name string
	Type series.Type
	// Order fixes the category order used by reports and charts.
	// Empty means order of first appearance.
	Order []string
}

// Schema describes the structure of a dataset.
type Schema struct {
	Columns []Column
}

// Names returns the column names in schema order.
func (s Schema) Names() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}

// Types returns the column types keyed by name, ready for dataframe.WithTypes.
func (s Schema) Types() map[string]series.Type {
	types := make(map[string]series.Type, len(s.Columns))
	for _, c := range s.Columns {
		types[c.Name] = c.Type
	}
	return types
}

// Lookup finds a column by name.
func (s Schema) Lookup(name string) (Column, bool) {
	for _, c := range s.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Order returns the category order of a column, or nil.
func (s Schema) Order(name string) []string {
	c, ok := s.Lookup(name)
	if !ok {
		return nil
	}
	return c.Order
}

// TitanicSchema is the layout of the passenger records table.
var TitanicSchema = Schema{Columns: []Column{
	{Name: "survived", Type: series.Int, Order: []string{"0", "1"}},
	{Name: "pclass", Type: series.Int, Order: []string{"1", "2", "3"}},
	{Name: "sex", Type: series.String},
	{Name: "age", Type: series.Float},
	{Name: "sibsp", Type: series.Int},
	{Name: "parch", Type: series.Int},
	{Name: "fare", Type: series.Float},
	{Name: "embarked", Type: series.String},
	{Name: "class", Type: series.String, Order: []string{"First", "Second", "Third"}},
	{Name: "who", Type: series.String},
	{Name: "adult_male", Type: series.Bool},
	{Name: "deck", Type: series.String, Order: []string{"A", "B", "C", "D", "E", "F", "G", "Unknown"}},
	{Name: "embark_town", Type: series.String},
	{Name: "alive", Type: series.String},
	{Name: "alone", Type: series.Bool},
}}
