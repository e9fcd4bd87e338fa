// Package morse encodes words to smooshed International Morse Code.
package morse

import (
	"strings"
)

const (
	Dot  = '.'
	Dash = '-'
)

// alphabet is indexed by letter - 'a'.
var alphabet = [26]string{
	".-",   // a
	"-...", // b
	"-.-.", // c
	"-..",  // d
	".",    // e
	"..-.", // f
	"--.",  // g
	"....", // h
	"..",   // i
	".---", // j
	"-.-",  // k
	".-..", // l
	"--",   // m
	"-.",   // n
	"---",  // o
	".--.", // p
	"--.-", // q
	".-.",  // r
	"...",  // s
	"-",    // t
	"..-",  // u
	"...-", // v
	".--",  // w
	"-..-", // x
	"-.--", // y
	"--..", // z
}

// Letter returns the Morse symbol of a single letter.
// Letters are matched case-insensitively; anything outside a-z reports false.
func Letter(r rune) (string, bool) {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if r < 'a' || r > 'z' {
		return "", false
	}
	return alphabet[r-'a'], true
}

// Encode converts a word to its Morse code without separators between letters.
// Characters without a Morse symbol are dropped.
func Encode(word string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(word) {
		if r < 'a' || r > 'z' {
			continue
		}
		sb.WriteString(alphabet[r-'a'])
	}
	return sb.String()
}

// IsPalindrome reports whether a code reads the same forwards and backwards.
// Codes only consist of ASCII symbols, so bytes are compared directly.
func IsPalindrome(code string) bool {
	for i, j := 0, len(code)-1; i < j; i, j = i+1, j-1 {
		if code[i] != code[j] {
			return false
		}
	}
	return true
}

// IsBalanced reports whether a code has the same number of dots and dashes.
func IsBalanced(code string) bool {
	return strings.Count(code, string(Dot)) == strings.Count(code, string(Dash))
}

// ContainsDashRun reports whether a code has at least n consecutive dashes.
func ContainsDashRun(code string, n int) bool {
	if n <= 0 {
		return true
	}
	return strings.Contains(code, strings.Repeat(string(Dash), n))
}
