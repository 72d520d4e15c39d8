// Package token provides the lexical layer shared by the JSON and CSV parsers.
//
// [Cursor] is a single-owner, front-to-back reader over a fully buffered
// input. [Number] scans the JSON number grammar and [UnquotePrefix] decodes a
// JSON string literal, including UTF-16 surrogate pairs. [Quote] and
// [QuoteCSV] produce the corresponding output forms.
package token
