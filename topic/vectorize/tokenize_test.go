package vectorize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize_LowercasesAndSplits(t *testing.T) {
	tok := NewTokenizer(TokenizerConfig{NoDefaultStop: true})
	got := tok.Tokenize("Grapes, WINE; and bread!")
	assert.Equal(t, []string{"grapes", "wine", "and", "bread"}, got)
}

func TestTokenize_DropsStopwordsAndShortTokens(t *testing.T) {
	// GIVEN the default stop set plus a custom entry
	tok := NewTokenizer(TokenizerConfig{StopWords: []string{"wine"}})

	// WHEN tokenizing a sentence full of function words
	got := tok.Tokenize("the wine is on a table")

	// THEN stopwords and single-rune tokens are gone
	assert.Equal(t, []string{"table"}, got)
}

func TestTokenize_KeepWordsOverrideStopSet(t *testing.T) {
	tok := NewTokenizer(TokenizerConfig{KeepWords: []string{"between"}})
	got := tok.Tokenize("between meals")
	assert.Equal(t, []string{"between", "meals"}, got)
}

func TestTokenize_FoldsAccents(t *testing.T) {
	tok := NewTokenizer(TokenizerConfig{NoDefaultStop: true})
	assert.Equal(t, []string{"cafe", "creme", "brulee"}, tok.Tokenize("Café crème brûlée"))

	kept := NewTokenizer(TokenizerConfig{NoDefaultStop: true, KeepAccents: true})
	assert.Equal(t, []string{"café"}, kept.Tokenize("Café"))
}

func TestTokenize_EmitsNGrams(t *testing.T) {
	// GIVEN a bigram tokenizer
	tok := NewTokenizer(TokenizerConfig{NoDefaultStop: true, NGramMax: 2})

	// WHEN tokenizing three words
	got := tok.Tokenize("dry red wine")

	// THEN unigrams come first, then consecutive bigrams
	assert.Equal(t, []string{"dry", "red", "wine", "dry red", "red wine"}, got)
}

func TestTokenize_EmptyInput(t *testing.T) {
	tok := NewTokenizer(TokenizerConfig{})
	assert.Empty(t, tok.Tokenize(""))
	assert.Empty(t, tok.Tokenize("  \t  "))
}
