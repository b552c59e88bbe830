package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/net/html/charset"

	"github.com/svgmin/svgmin"
)

var (
	outputPath    string
	configPath    string
	precision     uint
	keepXMLDecl   bool
	keepDoctype   bool
	keepComments  bool
	noMinifyPaths bool
	noMinifyColor bool
	noOptimize    bool
	forceEncoding string
	printStats    bool
)

var rootCmd = &cobra.Command{
	Use:   "svgmin [input]",
	Short: "Minify SVG documents",
	Long: `svgmin shrinks SVG documents without changing how they render: it
strips editor metadata, drops hidden and empty elements, rewrites colors
and path data to their shortest form, and removes attributes that are
already a renderer's default.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRoot,
}

// Execute runs the root command, exiting the process with status 1 on
// failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "-", "output file (use - for stdout)")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a .svgmin.yaml config file")
	rootCmd.Flags().UintVarP(&precision, "precision", "p", 2, "fractional digits kept in path coordinates")
	rootCmd.Flags().BoolVar(&keepXMLDecl, "keep-xml-declaration", false, "keep the XML declaration")
	rootCmd.Flags().BoolVar(&keepDoctype, "keep-doctype", false, "keep the DOCTYPE")
	rootCmd.Flags().BoolVar(&keepComments, "keep-comments", false, "keep comment nodes")
	rootCmd.Flags().BoolVar(&noMinifyPaths, "no-minify-paths", false, "disable path data minification")
	rootCmd.Flags().BoolVar(&noMinifyColor, "no-minify-colors", false, "disable color minification")
	rootCmd.Flags().BoolVar(&noOptimize, "no-optimize", false, "disable all optimizer passes; parse and re-serialize only")
	rootCmd.Flags().StringVar(&forceEncoding, "encoding", "", "transcode input from this encoding to UTF-8")
	rootCmd.PersistentFlags().BoolVarP(&printStats, "stats", "s", false, "print a size comparison to stderr")

	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(extractFontsCmd)
}

// buildOptions resolves the effective Options: config file, then flags that
// were explicitly set on the command line, in that order, matching the
// precedence documented for the driver.
func buildOptions(cmd *cobra.Command) (svgmin.Options, error) {
	opts, err := loadConfig(configPath)
	if err != nil {
		return opts, err
	}

	if noOptimize {
		return svgmin.Options{Precision: precision}, nil
	}

	if cmd.Flags().Changed("precision") {
		opts.Precision = precision
	}
	if cmd.Flags().Changed("keep-xml-declaration") {
		opts.RemoveXMLDeclaration = !keepXMLDecl
	}
	if cmd.Flags().Changed("keep-doctype") {
		opts.RemoveDoctype = !keepDoctype
	}
	if cmd.Flags().Changed("keep-comments") {
		opts.RemoveComments = !keepComments
	}
	if cmd.Flags().Changed("no-minify-paths") {
		opts.MinifyPaths = !noMinifyPaths
	}
	if cmd.Flags().Changed("no-minify-colors") {
		opts.MinifyColors = !noMinifyColor
	}

	return opts, nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	opts, err := buildOptions(cmd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	input := "-"
	if len(args) == 1 {
		input = args[0]
	}

	raw, err := readInput(input)
	if err != nil {
		return err
	}

	data, err := decodeToUTF8(raw, forceEncoding)
	if err != nil {
		return err
	}

	out, err := svgmin.MinifyWithOptions(data, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", displayName(input), err)
	}

	if err := writeOutput(outputPath, out); err != nil {
		return err
	}

	if printStats {
		printSizeStats(os.Stderr, len(raw), len(out))
	}

	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// decodeToUTF8 transcodes raw into UTF-8 when the caller forces a non-UTF-8
// encoding. The input's own XML declaration is not read: with no forced
// encoding, raw is returned unchanged. The core package only ever accepts
// UTF-8; this transcode step is a driver concern, not the core's.
func decodeToUTF8(raw []byte, forcedEncoding string) ([]byte, error) {
	if forcedEncoding == "" || isUTF8Label(forcedEncoding) {
		return raw, nil
	}

	r, err := charset.NewReaderLabel(forcedEncoding, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("unsupported --encoding %q: %w", forcedEncoding, err)
	}
	return io.ReadAll(r)
}

func isUTF8Label(label string) bool {
	switch label {
	case "utf-8", "UTF-8", "utf8", "UTF8":
		return true
	}
	return false
}

func displayName(path string) string {
	if path == "-" {
		return "<stdin>"
	}
	return path
}

func printSizeStats(w io.Writer, before, after int) {
	saved := before - after
	percent := 0.0
	if before > 0 {
		percent = float64(saved) / float64(before) * 100
	}
	fmt.Fprintf(w, "%d -> %d bytes (%.1f%% smaller)\n", before, after, percent)
}
