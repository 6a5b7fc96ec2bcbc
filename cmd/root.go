/*
Copyright © 2025 Ambor <saltbo@foxmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

const (
	inputPathKey    = "input.path"
	outputDirKey    = "output.dir"
	outputFormatKey = "output.format"
	logLevelKey     = "log.level"
	logFormatKey    = "log.format"
	logVerboseKey   = "log.verbose"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:          "eldamo-anki",
	Short:        "Generate Anki flashcard decks from the Eldamo lexicon",
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("input", "", "path to the Eldamo XML dataset (default input/eldamo-data.xml)")
	flags.String("output-dir", "", "directory decks are written to (default output)")
	flags.String("format", "", "deck storage: text or sqlite (default text)")
	flags.String("log-level", "", "log level (default info)")
	flags.String("log-format", "", "log format: json or text (default json)")
	flags.BoolP("verbose", "v", false, "log every skipped entry")

	bindFlagToViper(inputPathKey, flags.Lookup("input"))
	bindFlagToViper(outputDirKey, flags.Lookup("output-dir"))
	bindFlagToViper(outputFormatKey, flags.Lookup("format"))
	bindFlagToViper(logLevelKey, flags.Lookup("log-level"))
	bindFlagToViper(logFormatKey, flags.Lookup("log-format"))
	bindFlagToViper(logVerboseKey, flags.Lookup("verbose"))
}
