// logcsv - Log to CSV Converter
//
// logcsv reads the .log and .txt files of a directory, recognizes the common
// embedded-device log layouts and writes one CSV per log type.
package main

import (
	"os"

	"github.com/ccollicutt/logcsv/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
