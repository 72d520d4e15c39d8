// Package parse turns JSON, CSV and YAML text into [ir.Value] trees.
//
// # Usage
//
//	v, err := parse.JSON([]byte(`{"name": "alice", "age": 30}`))
//
//	// headed CSV gives one object per data row
//	recs, err := parse.CSVHeaded([]byte("name,age\nalice,30\n"))
//
//	// options select the format and the CSV mode
//	rows, err := parse.Parse(data, parse.ParseCSV(), parse.Headed(false))
//
// Input must be fully buffered. Every call owns its cursor, so concurrent
// calls need no coordination.
//
// Scalars in both formats go through [ir.FromText] or [ir.FromNumber]:
// unsigned, then signed, then float, with float overflow giving Null.
//
// Failures are [*ParseErr] values wrapping one of the sentinels in this
// package, which in turn wrap [ir.ErrStructural], [ir.ErrLexical] or
// [ir.ErrNumeric].
package parse
