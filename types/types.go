package types

// Chunk is one unit of manual text produced by the offline chunking step.
// Only the title is embedded; the content travels as search payload.
type Chunk struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ScoredChunk is a chunk returned by a similarity search together with
// its cosine similarity score (higher is closer).
type ScoredChunk struct {
	ID      int64
	Title   string
	Content string
	Score   float64
}

type Config struct {
	Collection string
	TopK       int
	StaticDir  string
}
