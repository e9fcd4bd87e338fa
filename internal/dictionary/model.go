package dictionary

// Entry is a word paired with its Morse code.
type Entry struct {
	Word string `yaml:"word"`
	Code string `yaml:"code"`
}
