package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"elanbot/types"
)

// ReadChunks loads the pre-chunked manual from a JSON file holding an array
// of {title, content} records, in the order they should be assigned ids.
func ReadChunks(path string) ([]types.Chunk, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read chunk file: %w", err)
	}

	var chunks []types.Chunk
	if err := json.Unmarshal(data, &chunks); err != nil {
		return nil, fmt.Errorf("failed to parse chunk file: %w", err)
	}

	if len(chunks) == 0 {
		return nil, fmt.Errorf("chunk file %s contains no chunks", path)
	}

	for i, chunk := range chunks {
		if strings.TrimSpace(chunk.Title) == "" {
			return nil, fmt.Errorf("chunk %d has an empty title", i)
		}
	}

	return chunks, nil
}
