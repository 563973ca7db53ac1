package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/narrativelab/panorama/internal/output"
)

// formatValue is a pflag.Value that only accepts registered report formats,
// so bad --format values fail at flag-parse time instead of mid-render.
type formatValue string

// Compile-time interface check.
var _ pflag.Value = (*formatValue)(nil)

func (f *formatValue) String() string { return string(*f) }

func (f *formatValue) Set(v string) error {
	v = strings.ToLower(strings.TrimSpace(v))
	if _, err := output.GetFormatter(v); err != nil {
		return fmt.Errorf("must be one of: %s", strings.Join(output.FormatterNames(), ", "))
	}
	*f = formatValue(v)
	return nil
}

func (f *formatValue) Type() string { return "format" }
