package main

import (
	"fmt"
	"io"
)

// printUsage writes command usage to w.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, `mdpress - convert a Markdown file to PDF

Usage:
  mdpress [flags] <input.md> <output.pdf>

Flags:
  -c, --config string    YAML config file merged over defaults
  -l, --log string       also write log output to this file
  -t, --timeout string   PDF generation timeout (e.g., 30s, 2m)
  -v, --verbose          enable debug logging
      --version          print version and exit
  -h, --help             show this help

Environment:
  MDPRESS_CONFIG    config file path (flag -c wins)
  MDPRESS_LOG       log file path (flag -l wins)
  MDPRESS_VERBOSE   set to 1/true to enable debug logging

Exit codes:
  0  success
  1  configuration, dependency, validation, or conversion failure
  2  cancelled by the user
  3  unexpected error

Examples:
  mdpress README.md README.pdf
  mdpress -c style.yaml -v notes.md notes.pdf
  mdpress --log convert.log --timeout 2m report.md report.pdf`)
}
