package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/svgmin/svgmin"
)

var extractFontsCmd = &cobra.Command{
	Use:   "extract-fonts [input]",
	Short: "Report the glyphs used and @font-face rules declared in an SVG",
	Long: `extract-fonts parses an SVG without minifying it and prints, as JSON,
the set of characters that appear in its text content and the @font-face
rules declared in its <style> elements. It is meant as a building block for
font-subsetting pipelines that decide which glyphs to keep before a font
ever reaches a browser.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtractFonts,
}

type fontReport struct {
	Chars     string            `json:"chars"`
	FontFaces []svgmin.FontFace `json:"font_faces"`
}

func runExtractFonts(cmd *cobra.Command, args []string) error {
	input := "-"
	if len(args) == 1 {
		input = args[0]
	}

	raw, err := readInput(input)
	if err != nil {
		return err
	}

	doc, err := svgmin.ParseDocument(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", displayName(input), err)
	}

	chars := svgmin.ExtractTextChars(doc)
	runes := make([]rune, 0, len(chars))
	for r := range chars {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })

	report := fontReport{
		Chars:     string(runes),
		FontFaces: svgmin.ExtractFontFaces(doc),
	}

	return writeJSON(os.Stdout, report)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
