// Package ir provides the in-memory value model shared by the parsers and
// serializers.
//
// A [Value] is a tagged union. Its [Type] selects which of the fields hold
// data: scalars use Bool, Uint, Int, Float or String; JSON containers use
// Values and Fields; CSV documents use Rows (headless) and Records (headed).
// Every container exclusively owns its children: there are no parent
// pointers and values are never shared between trees.
//
// [FromText] implements the scalar inference applied to free text by both
// the JSON and CSV parsers.
package ir
