package sched

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// WidthKey addresses one defaultable fixed-width string column.
type WidthKey struct {
	Type   KeywordType
	Column int
}

// WidthTable maps (keyword type, column index) to the expected character
// width of a defaulted string column. It is supplied by the caller, consulted
// read-only during parsing, and safe to share across concurrent parses.
// A nil table is valid and means no column has a known width.
type WidthTable map[WidthKey]int

// Width returns the expected width for the given column, if configured.
func (t WidthTable) Width(kt KeywordType, column int) (int, bool) {
	w, ok := t[WidthKey{Type: kt, Column: column}]
	return w, ok
}

// LoadWidths reads a width table from a YAML document of the form:
//
//	WELSPECS:
//	  7: 4
//	  8: 3
//	COMPDAT:
//	  12: 1
//
// Keyword names must be members of the keyword vocabulary.
func LoadWidths(r io.Reader) (WidthTable, error) {
	var doc map[string]map[int]int
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return WidthTable{}, nil
		}
		return nil, fmt.Errorf("width table: %w", err)
	}

	table := make(WidthTable)
	for name, columns := range doc {
		kt := KeywordTypeFromString(name)
		if kt == KwUntyped && name != "UNTYPED" {
			return nil, fmt.Errorf("width table: unknown keyword %q", name)
		}
		for column, width := range columns {
			if column < 0 {
				return nil, fmt.Errorf("width table: %s: negative column %d", name, column)
			}
			if width <= 0 {
				return nil, fmt.Errorf("width table: %s column %d: width %d out of range", name, column, width)
			}
			table[WidthKey{Type: kt, Column: column}] = width
		}
	}
	return table, nil
}
