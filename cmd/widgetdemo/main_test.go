package main

import (
	"flag"
	"strings"
	"testing"
)

func TestRegisterFlags(t *testing.T) {
	var opts options
	fs := flag.NewFlagSet("widgetdemo", flag.ContinueOnError)
	registerFlags(fs, &opts)

	if usage := fs.Lookup("config").Usage; !strings.Contains(usage, "TOML") || !strings.Contains(usage, "YAML") {
		t.Errorf("config usage = %q, want both formats named", usage)
	}
	if err := fs.Parse([]string{"-config", "w.yaml", "-verbose"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if opts.configPath != "w.yaml" || !opts.verbose {
		t.Errorf("opts = %+v", opts)
	}
}
