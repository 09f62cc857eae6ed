package vectorize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// TokenizerConfig groups tokenization parameters for NewTokenizer.
type TokenizerConfig struct {
	StopWords     []string // merged into the default English stop set
	KeepWords     []string // removed from the stop set again (overrides defaults)
	NoDefaultStop bool     // true = start from an empty stop set
	MinTokenLen   int      // tokens shorter than this are dropped (default 2)
	KeepAccents   bool     // false = fold combining marks ("café" -> "cafe")
	NGramMax      int      // largest n-gram emitted (default 1 = unigrams only)
}

// Tokenizer lowercases, folds accents, splits on non-letter/digit runes,
// drops stopwords and short tokens, and optionally appends n-grams.
type Tokenizer struct {
	stop     map[string]struct{}
	minLen   int
	ngramMax int
	fold     transform.Transformer
}

func NewTokenizer(cfg TokenizerConfig) *Tokenizer {
	if cfg.MinTokenLen == 0 {
		cfg.MinTokenLen = 2
	}
	if cfg.NGramMax == 0 {
		cfg.NGramMax = 1
	}
	stop := make(map[string]struct{})
	if !cfg.NoDefaultStop {
		for _, w := range EnglishStop {
			stop[w] = struct{}{}
		}
	}
	for _, w := range cfg.StopWords {
		stop[strings.ToLower(w)] = struct{}{}
	}
	for _, w := range cfg.KeepWords {
		delete(stop, strings.ToLower(w))
	}
	t := &Tokenizer{
		stop:     stop,
		minLen:   cfg.MinTokenLen,
		ngramMax: cfg.NGramMax,
	}
	if !cfg.KeepAccents {
		// NFD, strip combining marks, recompose.
		t.fold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	}
	return t
}

// Tokenize splits one document into vocabulary terms.
func (t *Tokenizer) Tokenize(doc string) []string {
	doc = strings.ToLower(doc)
	if t.fold != nil {
		if folded, _, err := transform.String(t.fold, doc); err == nil {
			doc = folded
		}
	}
	words := strings.FieldsFunc(doc, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if len([]rune(w)) < t.minLen {
			continue
		}
		if _, isStop := t.stop[w]; isStop {
			continue
		}
		tokens = append(tokens, w)
	}

	if t.ngramMax < 2 {
		return tokens
	}
	unigrams := len(tokens)
	for n := 2; n <= t.ngramMax; n++ {
		for i := 0; i+n <= unigrams; i++ {
			tokens = append(tokens, strings.Join(tokens[i:i+n], " "))
		}
	}
	return tokens
}
