package service

import (
	"strings"
	"unicode/utf8"
)

// ChunkConfig controls how source documents are split before embedding.
type ChunkConfig struct {
	// Size is the character budget per chunk.
	Size int
	// Overlap is the number of trailing characters carried into the next
	// chunk so no semantic unit is fully lost at a split boundary.
	Overlap int
}

// DefaultChunkConfig provides sane defaults for chunking.
func DefaultChunkConfig() ChunkConfig {
	return ChunkConfig{
		Size:    1000,
		Overlap: 200,
	}
}

// splitText splits a document into overlapping chunks. Splitting is
// recursive: paragraph boundaries first, sentence boundaries inside oversize
// paragraphs, then a raw rune window for sentences that still exceed the
// budget.
func splitText(text string, cfg ChunkConfig) []string {
	clean := strings.TrimSpace(text)
	if clean == "" {
		return nil
	}
	if cfg.Size <= 0 {
		cfg = DefaultChunkConfig()
	}
	if utf8.RuneCountInString(clean) <= cfg.Size {
		return []string{clean}
	}

	return mergeWithOverlap(atomicPieces(clean, cfg.Size), cfg)
}

// atomicPieces breaks text into ordered pieces that each fit the budget,
// preferring the coarsest boundary that works.
func atomicPieces(text string, size int) []string {
	var pieces []string
	for _, para := range strings.SplitAfter(text, "\n\n") {
		if strings.TrimSpace(para) == "" {
			continue
		}
		if utf8.RuneCountInString(para) <= size {
			pieces = append(pieces, para)
			continue
		}
		for _, sentence := range splitSentences(para) {
			if utf8.RuneCountInString(sentence) <= size {
				pieces = append(pieces, sentence)
				continue
			}
			pieces = append(pieces, windowSplit(sentence, size)...)
		}
	}
	return pieces
}

// splitSentences splits after sentence-ending punctuation followed by
// whitespace, or after newlines.
func splitSentences(text string) []string {
	var sentences []string
	runes := []rune(text)
	start := 0
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		atEnd := i == len(runes)-1
		boundary := r == '\n' ||
			((r == '.' || r == '!' || r == '?') && !atEnd && runes[i+1] == ' ')
		if boundary || atEnd {
			end := i + 1
			if !atEnd && r != '\n' {
				end = i + 2 // keep the trailing space with the sentence
			}
			sentences = append(sentences, string(runes[start:end]))
			start = end
			i = end - 1
		}
	}
	return sentences
}

// windowSplit is the last resort: a raw rune window of the configured size.
func windowSplit(text string, size int) []string {
	runes := []rune(text)
	var out []string
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		out = append(out, string(runes[start:end]))
	}
	return out
}

// mergeWithOverlap greedily packs pieces into chunks up to the budget,
// seeding each new chunk with the overlap tail of the previous one. The
// overlap tail shrinks when needed so a chunk never exceeds the budget.
func mergeWithOverlap(pieces []string, cfg ChunkConfig) []string {
	var chunks []string
	var cur []rune

	flush := func() {
		chunk := strings.TrimSpace(string(cur))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
		if cfg.Overlap > 0 && len(cur) > cfg.Overlap {
			tail := make([]rune, cfg.Overlap)
			copy(tail, cur[len(cur)-cfg.Overlap:])
			cur = tail
		} else {
			cur = cur[:0]
		}
	}

	for _, piece := range pieces {
		pr := []rune(piece)
		if len(cur) > 0 && len(cur)+len(pr) > cfg.Size {
			flush()
			for len(cur) > 0 && len(cur)+len(pr) > cfg.Size {
				cur = cur[1:]
			}
		}
		cur = append(cur, pr...)
	}
	if chunk := strings.TrimSpace(string(cur)); chunk != "" {
		chunks = append(chunks, chunk)
	}

	return chunks
}
