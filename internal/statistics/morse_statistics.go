// Package statistics answers questions about the Morse codes of a dictionary.
package statistics

import (
	"strings"

	"github.com/at-ishikawa/smorse/internal/dictionary"
	"github.com/at-ishikawa/smorse/internal/morse"
)

// SymbolCount holds the number of dots and dashes across all codes
type SymbolCount struct {
	Dots   int `yaml:"dots"`
	Dashes int `yaml:"dashes"`
}

// CodeFrequency is a code and the number of words encoded to it
type CodeFrequency struct {
	Code  string `yaml:"code"`
	Count int    `yaml:"count"`
}

// Params holds the arguments of the finders run by CalculateStatistics
type Params struct {
	DashRunLength        int
	BalancedWordLength   int
	PalindromeWordLength int
}

// Result holds the answers of all analyses in the order they are reported
type Result struct {
	Params       Params             `yaml:"-"`
	Words        int                `yaml:"words"`
	Symbols      SymbolCount        `yaml:"symbols"`
	MostFrequent CodeFrequency      `yaml:"most_frequent"`
	DashRuns     []dictionary.Entry `yaml:"dash_runs"`
	Balanced     []dictionary.Entry `yaml:"balanced"`
	Palindromes  []dictionary.Entry `yaml:"palindromes"`
}

// CalculateStatistics runs every analysis over the dictionary.
func CalculateStatistics(d *dictionary.Dictionary, params Params) Result {
	return Result{
		Params:       params,
		Words:        d.Len(),
		Symbols:      CountSymbols(d),
		MostFrequent: MostFrequent(d),
		DashRuns:     FindDashRun(d, params.DashRunLength),
		Balanced:     FindBalanced(d, params.BalancedWordLength),
		Palindromes:  FindPalindrome(d, params.PalindromeWordLength),
	}
}

// CountSymbols counts dots and dashes over all codes.
// Codes only contain dots and dashes, so dashes are whatever is not a dot.
func CountSymbols(d *dictionary.Dictionary) SymbolCount {
	var total, dots int
	for _, code := range d.Codes() {
		total += len(code)
		dots += strings.Count(code, string(morse.Dot))
	}
	return SymbolCount{
		Dots:   dots,
		Dashes: total - dots,
	}
}

// MostFrequent returns the code shared by the most words.
// Ties go to the lexicographically smallest code. An empty dictionary returns the zero value.
func MostFrequent(d *dictionary.Dictionary) CodeFrequency {
	counts := make(map[string]int)
	for _, code := range d.Codes() {
		counts[code]++
	}

	var result CodeFrequency
	for code, count := range counts {
		if count > result.Count || (count == result.Count && code < result.Code) {
			result = CodeFrequency{Code: code, Count: count}
		}
	}
	return result
}

// FindDashRun returns the entries whose code has at least n dashes in a row.
func FindDashRun(d *dictionary.Dictionary, n int) []dictionary.Entry {
	return filter(d, func(entry dictionary.Entry) bool {
		return morse.ContainsDashRun(entry.Code, n)
	})
}

// FindBalanced returns the entries with a word of wordLength bytes and as many dots as dashes.
func FindBalanced(d *dictionary.Dictionary, wordLength int) []dictionary.Entry {
	return filter(d, func(entry dictionary.Entry) bool {
		return len(entry.Word) == wordLength && morse.IsBalanced(entry.Code)
	})
}

// FindPalindrome returns the entries with a word of wordLength bytes whose code is a palindrome.
func FindPalindrome(d *dictionary.Dictionary, wordLength int) []dictionary.Entry {
	return filter(d, func(entry dictionary.Entry) bool {
		return len(entry.Word) == wordLength && morse.IsPalindrome(entry.Code)
	})
}

func filter(d *dictionary.Dictionary, match func(dictionary.Entry) bool) []dictionary.Entry {
	matches := make([]dictionary.Entry, 0)
	for _, entry := range d.Entries() {
		if match(entry) {
			matches = append(matches, entry)
		}
	}
	return matches
}
