package cli

import (
	"fmt"
	"io"

	"github.com/at-ishikawa/smorse/internal/morse"
	"github.com/fatih/color"
)

// RunEncode writes the code of each word. With verbose, the symbol of every letter follows its word.
func RunEncode(output io.Writer, words []string, verbose bool) {
	bold := color.New(color.Bold)
	for _, word := range words {
		fmt.Fprintf(output, "%s\t%s\n", bold.Sprint(word), morse.Encode(word))
		if !verbose {
			continue
		}
		for _, r := range word {
			symbol, ok := morse.Letter(r)
			if !ok {
				fmt.Fprintf(output, "  %c\t(skipped)\n", r)
				continue
			}
			fmt.Fprintf(output, "  %c\t%s\n", r, symbol)
		}
	}
}
