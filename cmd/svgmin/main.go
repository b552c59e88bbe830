// Command svgmin minifies SVG files from the command line.
package main

import "github.com/svgmin/svgmin/cmd/svgmin/cmd"

func main() {
	cmd.Execute()
}
