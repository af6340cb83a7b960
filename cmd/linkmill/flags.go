package main

import (
	"flag"
	"fmt"
	"strings"
)

type cliFlags struct {
	targetsFile string
	targetURLs  multiFlag
	keywords    string
	configFile  string
	tools       string
	format      string
	outputPath  string
	noExport    bool
}

// multiFlag collects a repeatable string flag.
type multiFlag []string

func (m *multiFlag) String() string {
	return strings.Join(*m, ",")
}

func (m *multiFlag) Set(value string) error {
	*m = append(*m, value)
	return nil
}

func parseFlags() *cliFlags {
	flags := &cliFlags{}

	flag.StringVar(&flags.targetsFile, "targets", "", "Path to a text file with one target URL per line.")
	flag.StringVar(&flags.targetsFile, "t", "", "Alias for -targets.")

	flag.Var(&flags.targetURLs, "u", "Target URL to submit (repeatable).")

	flag.StringVar(&flags.keywords, "keywords", "", "Comma-separated keywords shared across all targets.")
	flag.StringVar(&flags.keywords, "k", "", "Alias for -keywords.")

	flag.StringVar(&flags.configFile, "config", "", "Path to the YAML/JSON configuration file. If not set, searches default locations.")
	flag.StringVar(&flags.configFile, "c", "", "Alias for -config.")

	flag.StringVar(&flags.tools, "tools", "", "Comma-separated tool IDs to enable (default: all configured tools).")

	flag.StringVar(&flags.format, "format", "", "Report export format: table, json or csv (overrides config).")
	flag.StringVar(&flags.outputPath, "o", "", "Report output path (default: auto-generated under the output dir).")
	flag.BoolVar(&flags.noExport, "no-export", false, "Skip file export, print the summary table only.")

	flag.Parse()
	return flags
}

func (f *cliFlags) enabledToolIDs() []string {
	if strings.TrimSpace(f.tools) == "" {
		return nil
	}
	var ids []string
	for _, id := range strings.Split(f.tools, ",") {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	return ids
}

func (f *cliFlags) validate() error {
	if f.targetsFile == "" && len(f.targetURLs) == 0 {
		return fmt.Errorf("at least one target is required: use -targets <file> or -u <url>")
	}
	return nil
}
