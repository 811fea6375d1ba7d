package types

// Document holds the text extracted from one uploaded file. It is built once
// per upload and replaced wholesale when a new file is processed.
type Document struct {
	Title     string // Original file name without extension
	Source    string // Stored file path
	Text      string // Concatenated page text, in page order
	PageCount int    // Number of pages in the source file
	CharCount int    // Length of Text, reported to the client after extraction
}

// ChunkAnswer is the result of running extractive QA over a single chunk.
// Score is already normalized into [0,1] by the aggregator.
type ChunkAnswer struct {
	Answer string
	Score  float64
}

// DocumentServiceConfig contains configuration options for text chunking
type DocumentServiceConfig struct {
	MaxChunkSize int // Maximum size for text chunks (soft bound)
	OverlapSize  int // Size of overlap between chunks
}
