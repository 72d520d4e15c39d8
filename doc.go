// Package mawu reads and writes JSON and CSV files as [ir.Value] trees and
// offers a few whole-document operations on them: JSON Patch, expression
// filters and line diffs.
//
// # Usage
//
//	v, err := mawu.ReadCSVHeaded("people.csv")
//	if err != nil {
//	    return err
//	}
//	adults, err := mawu.Filter(v, "age >= 18")
//	if err != nil {
//	    return err
//	}
//	return mawu.WritePretty("adults.csv", adults, 0)
//
// # Related Packages
//
//   - github.com/signadot/mawu-format/mawu/ir - the value model
//   - github.com/signadot/mawu-format/mawu/parse - text to values
//   - github.com/signadot/mawu-format/mawu/encode - values to text
package mawu
