// Package encode writes [ir.Value] trees as JSON, CSV or YAML text.
//
// # Usage
//
//	// compact JSON
//	err := encode.Encode(v, os.Stdout)
//
//	// indented JSON, two spaces per level
//	err := encode.Encode(v, os.Stdout, encode.Indent(2))
//
//	// CSV; headed output needs CsvRecords, headless output CsvRows
//	s, err := encode.CSVHeaded(records)
//
// Output is produced in full before anything is written, so a failed call
// writes nothing. Everything written here parses back with package parse.
package encode
