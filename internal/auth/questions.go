package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// QuestionPool is the fixed pool of security questions for code accounts.
// Indices into this slice are derived from the code hash, so entries must
// never be reordered or removed once accounts exist.
var QuestionPool = []string{
	"What is your favorite kind of weather?",
	"Name a fictional place you like.",
	"What's a word you liked as a kid?",
	"What is your favorite tree or plant?",
	"What's a sound you find calming?",
	"What is a snack you'd never share?",
	"Name a street you remember (not your own).",
	"What animal do you find funny?",
	"What's an object you'd take to a desert island?",
	"Name a book you liked but never finished.",
	"What's a job you'd never want to do?",
	"Name a toy or object you lost as a child.",
	"What's a dream you remember?",
	"What's a smell that reminds you of somewhere?",
}

// QuestionIndices derives up to three distinct pool indices from a code word.
// The SHA-256 hex digest of the code is consumed in 4-hex-char slices, each
// reduced modulo the pool size. Duplicate indices are skipped; insertion
// order is preserved so the same code always yields the same questions in the
// same order.
func QuestionIndices(code string) []int {
	digest := sha256.Sum256([]byte(code))
	hexDigest := hex.EncodeToString(digest[:])

	indices := make([]int, 0, 3)
	seen := make(map[int]bool)

	for offset := 0; len(indices) < 3 && offset+4 < len(hexDigest); offset += 4 {
		slice := hexDigest[offset : offset+4]
		n, err := strconv.ParseUint(slice, 16, 32)
		if err != nil {
			continue
		}
		idx := int(n) % len(QuestionPool)
		if !seen[idx] {
			seen[idx] = true
			indices = append(indices, idx)
		}
	}

	return indices
}

// QuestionsForCode returns the security questions shown for a code word.
func QuestionsForCode(code string) []string {
	indices := QuestionIndices(code)
	questions := make([]string, 0, len(indices))
	for _, i := range indices {
		questions = append(questions, QuestionPool[i])
	}
	return questions
}
