package encode

import "github.com/signadot/mawu-format/mawu/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// Indent sets the spaces per nesting level for JSON and YAML. Zero is
// compact. CSV ignores it.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = max(0, n) }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// Headed forces headed or headless CSV output. Without it the mode follows
// the value: CsvRecords are headed, anything else headless.
func Headed(v bool) EncodeOption {
	return func(es *EncState) { es.headed = &v }
}
