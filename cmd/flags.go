package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

// formatValue is a --format flag restricted to text or yaml.
type formatValue string

var _ pflag.Value = (*formatValue)(nil)

func newFormatValue(p *string) *formatValue {
	*p = formatText
	return (*formatValue)(p)
}

func (f *formatValue) String() string { return string(*f) }

func (f *formatValue) Set(s string) error {
	switch v := strings.ToLower(s); v {
	case formatText, formatYAML:
		*f = formatValue(v)
		return nil
	default:
		return fmt.Errorf("must be %s or %s", formatText, formatYAML)
	}
}

func (f *formatValue) Type() string { return "format" }
