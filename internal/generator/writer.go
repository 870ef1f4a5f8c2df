package generator

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteDataset serializes the dataset as indented JSON.
func WriteDataset(w io.Writer, dataset Dataset) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(dataset); err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}
	return nil
}
