package domain

// Document is the unit of ingestion: a raw knowledge text plus the tag
// identifying where it came from.
type Document struct {
	Text      string
	SourceTag string
}

// Chunk represents a bounded-length span of a source document, the unit of
// embedding and retrieval. A chunk is immutable once embedded and carries the
// source tag of its parent document for provenance display.
type Chunk struct {
	ID        string
	Text      string
	SourceTag string
	Embedding []float32
	// Seq is the store-assigned insertion sequence, used to break
	// similarity ties deterministically.
	Seq int64
}
