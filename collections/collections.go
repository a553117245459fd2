package collections

import (
	"sort"
	"strings"
	"unicode"
)

// Median returns the middle value of the sorted input. For an even number
// of values the lower middle is returned, matching the exercise's "the value
// in the middle position" reading. The input slice is not modified.
func Median(values []int) (int, bool) {
	if len(values) == 0 {
		return 0, false
	}
	sorted := append([]int(nil), values...)
	sort.Ints(sorted)
	return sorted[(len(sorted)-1)/2], true
}

// Mode returns the most frequent value. Ties break toward the smallest
// value so the result is deterministic even though map iteration is not.
func Mode(values []int) (int, bool) {
	if len(values) == 0 {
		return 0, false
	}

	counts := make(map[int]int)
	for _, v := range values {
		counts[v]++
	}

	mode, best := 0, 0
	for v, n := range counts {
		if n > best || (n == best && v < mode) {
			mode, best = v, n
		}
	}
	return mode, true
}

// PigLatin converts a single word. Words starting with a vowel get "-hay"
// appended; otherwise the first consonant moves to the end followed by
// "ay". The first rune is inspected as a rune so that non-ASCII words do
// not get split mid-character.
func PigLatin(word string) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}

	first := unicode.ToLower(runes[0])
	switch first {
	case 'a', 'e', 'i', 'o', 'u':
		return word + "-hay"
	}
	return string(runes[1:]) + "-" + string(runes[0]) + "ay"
}

// PigLatinSentence applies PigLatin word by word, preserving spacing the
// simple way (single spaces).
func PigLatinSentence(sentence string) string {
	words := strings.Fields(sentence)
	for i, w := range words {
		words[i] = PigLatin(w)
	}
	return strings.Join(words, " ")
}
