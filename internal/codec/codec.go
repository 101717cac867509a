// Package codec provides the packed-word representation and the feedback
// arithmetic the whole solver is built on. Words are 5 lowercase letters
// packed into a uint64 (5 bits per letter, 'a' = 1 .. 'z' = 26, first
// letter in the most significant field); feedback is a base-3 outcome code
// with one digit per position (0 = absent, 1 = present elsewhere,
// 2 = correct position), most significant digit first.
package codec

import (
	"github.com/gcbaptista/go-wordle-engine/internal/errors"
)

const (
	// WordLen is the fixed word length. The packing scheme, the outcome
	// codes and the persisted formats all assume it.
	WordLen = 5

	// AlphabetSize is the number of letter codes (1..26).
	AlphabetSize = 26

	charBits = 5
	charMask = 0x1F
)

const (
	// OutcomeCount is the number of distinct outcome codes (3^WordLen).
	OutcomeCount = 243

	// OutcomeSolved is the all-correct outcome (every digit 2).
	OutcomeSolved = OutcomeCount - 1
)

// PackedWord is a word packed 5 bits per letter. The zero value is never a
// valid word and doubles as the "no word" sentinel.
type PackedWord uint64

// Outcome is a feedback code in [0, OutcomeCount).
type Outcome uint16

// Encode packs a word. It returns ErrInvalidWord if the word is not exactly
// WordLen lowercase ASCII letters.
func Encode(word string) (PackedWord, error) {
	if len(word) != WordLen {
		return 0, errors.NewInvalidWordError(word, "must be exactly 5 letters")
	}
	var packed PackedWord
	for i := 0; i < WordLen; i++ {
		c := word[i]
		if c < 'a' || c > 'z' {
			return 0, errors.NewInvalidWordError(word, "must contain only lowercase letters a-z")
		}
		packed = packed<<charBits | PackedWord(c-'a'+1)
	}
	return packed, nil
}

// MustEncode packs a word known at compile time to be valid. It panics on
// invalid input and is intended for constants and tests only.
func MustEncode(word string) PackedWord {
	packed, err := Encode(word)
	if err != nil {
		panic(err)
	}
	return packed
}

// Decode unpacks a word back into its string form. It is total: any 5-bit
// field outside [1,26] decodes to a placeholder byte, but valid PackedWords
// round-trip exactly.
func Decode(packed PackedWord) string {
	buf := make([]byte, WordLen)
	for i := WordLen - 1; i >= 0; i-- {
		code := byte(packed & charMask)
		if code >= 1 && code <= AlphabetSize {
			buf[i] = code + 'a' - 1
		} else {
			buf[i] = '?'
		}
		packed >>= charBits
	}
	return string(buf)
}

// CharCodeAt extracts the letter code (1..26) at position pos (0-based,
// leftmost letter first).
func CharCodeAt(packed PackedWord, pos int) uint8 {
	return uint8(packed >> (charBits * (WordLen - 1 - pos)) & charMask)
}

// Feedback computes the outcome of playing guess against answer with
// standard Wordle duplicate-letter accounting: correct positions are marked
// first and consume their letter from the answer; remaining guess letters
// are marked present only while the answer still has an unconsumed instance.
func Feedback(guess, answer PackedWord) Outcome {
	var guessCodes, answerCodes [WordLen]uint8
	var answerCounts [AlphabetSize + 1]uint8

	for i := 0; i < WordLen; i++ {
		guessCodes[i] = CharCodeAt(guess, i)
		answerCodes[i] = CharCodeAt(answer, i)
		answerCounts[answerCodes[i]]++
	}

	var digits [WordLen]uint8
	for i := 0; i < WordLen; i++ {
		if guessCodes[i] == answerCodes[i] {
			digits[i] = 2
			answerCounts[guessCodes[i]]--
		}
	}
	for i := 0; i < WordLen; i++ {
		if digits[i] == 0 && answerCounts[guessCodes[i]] > 0 {
			digits[i] = 1
			answerCounts[guessCodes[i]]--
		}
	}

	var out Outcome
	for i := 0; i < WordLen; i++ {
		out = out*3 + Outcome(digits[i])
	}
	return out
}

// OutcomeDigits expands an outcome code into its per-position digits,
// leftmost position first.
func OutcomeDigits(out Outcome) [WordLen]uint8 {
	var digits [WordLen]uint8
	for i := WordLen - 1; i >= 0; i-- {
		digits[i] = uint8(out % 3)
		out /= 3
	}
	return digits
}

// FormatOutcome renders an outcome code as a 5-character pattern using
// 'g' (correct), 'y' (present elsewhere) and '_' (absent).
func FormatOutcome(out Outcome) string {
	digits := OutcomeDigits(out)
	buf := make([]byte, WordLen)
	for i, d := range digits {
		switch d {
		case 2:
			buf[i] = 'g'
		case 1:
			buf[i] = 'y'
		default:
			buf[i] = '_'
		}
	}
	return string(buf)
}

// ValidHardModeGuess reports whether candidate is a legal hard-mode guess
// after previousGuess received previousOutcome: every green letter must stay
// in the same position and every yellow letter must appear in the candidate
// with at least the revealed multiplicity.
func ValidHardModeGuess(candidate, previousGuess PackedWord, previousOutcome Outcome) bool {
	digits := OutcomeDigits(previousOutcome)

	var requiredYellows [AlphabetSize + 1]uint8
	for i := 0; i < WordLen; i++ {
		prevCode := CharCodeAt(previousGuess, i)
		switch digits[i] {
		case 2:
			if CharCodeAt(candidate, i) != prevCode {
				return false
			}
		case 1:
			requiredYellows[prevCode]++
		}
	}

	var candidateCounts [AlphabetSize + 1]uint8
	for i := 0; i < WordLen; i++ {
		candidateCounts[CharCodeAt(candidate, i)]++
	}
	for code := 1; code <= AlphabetSize; code++ {
		if candidateCounts[code] < requiredYellows[code] {
			return false
		}
	}
	return true
}
