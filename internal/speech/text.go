package speech

import "strconv"

// Category keys with special pronunciation rules.
const (
	lettersKey = "letters"
	numbersKey = "numbers"
)

var numberWords = [...]string{
	1:  "one",
	2:  "two",
	3:  "three",
	4:  "four",
	5:  "five",
	6:  "six",
	7:  "seven",
	8:  "eight",
	9:  "nine",
	10: "ten",
	11: "eleven",
	12: "twelve",
	13: "thirteen",
	14: "fourteen",
	15: "fifteen",
	16: "sixteen",
	17: "seventeen",
	18: "eighteen",
	19: "nineteen",
	20: "twenty",
}

// TextFor maps an item slug to the text spoken for it. Letters are
// spoken literally, number slugs from 1 to 20 become cardinal words,
// and everything else echoes the slug. Total: malformed or out-of-range
// input degrades to the literal slug, never an error.
func TextFor(categoryKey, slug string) string {
	switch categoryKey {
	case lettersKey:
		return slug
	case numbersKey:
		n, err := strconv.Atoi(slug)
		if err != nil || n < 1 || n > 20 {
			return slug
		}
		return numberWords[n]
	default:
		return slug
	}
}
