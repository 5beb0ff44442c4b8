package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ebakup/edbdump/edb"
)

var outputPath string

var rootCmd = &cobra.Command{
	Use:   "edbdump <datafile>",
	Short: "Human-readable dump of ebakup datafiles",
	Long: `edbdump renders an ebakup datafile as text, one "key: value" line per
decoded field. It recognizes content data, backup data, and main database
files by their leading magic string, and verifies every block checksum
while reading. A dump that does not end with "event: dump complete" means
the file failed validation partway through.

Example:
  edbdump content.edb
  edbdump backup.edb -o backup.txt`,
	Version: "0.1.0",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDump(args[0])
	},
}

func init() {
	rootCmd.Flags().
		StringVarP(&outputPath, "output", "o", "", "Write the dump to a file instead of stdout")
	rootCmd.SilenceUsage = true
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runDump(path string) error {
	w := io.Writer(os.Stdout)
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}
	if err := edb.DumpFile(path, w); err != nil {
		return fmt.Errorf("failed to dump %s: %w", path, err)
	}
	return nil
}
