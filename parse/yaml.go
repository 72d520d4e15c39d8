package parse

import (
	"errors"

	"github.com/goccy/go-yaml"

	"github.com/signadot/mawu-format/mawu/format"
	"github.com/signadot/mawu-format/mawu/ir"
)

// parseYAML reads a single YAML document through goccy/go-yaml. Mappings
// become Objects and sequences Arrays; scalars keep the types YAML gives
// them.
func parseYAML(d []byte) (*ir.Value, error) {
	var x any
	if err := yaml.Unmarshal(d, &x); err != nil {
		return nil, &ParseErr{Format: format.YAMLFormat, Err: ErrSyntax, Cause: err}
	}
	v, err := ir.FromAny(x)
	if errors.Is(err, ir.ErrNonFinite) {
		return nil, &ParseErr{Format: format.YAMLFormat, Err: ErrInvalidNumber, Cause: err}
	}
	if err != nil {
		return nil, &ParseErr{Format: format.YAMLFormat, Err: ErrSyntax, Cause: err}
	}
	return v, nil
}
