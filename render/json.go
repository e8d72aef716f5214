package render

import (
	"encoding/json"

	"github.com/jkrenek/zotero-notion-converter/notion"
)

// appendPayload is the body shape of one destination append call.
type appendPayload struct {
	Children []notion.Block `json:"children"`
}

// JSON renders partitioned batches as indented destination-API payloads,
// one children array per append call.
func JSON(batches [][]notion.Block) ([]byte, error) {
	payloads := make([]appendPayload, len(batches))
	for i, batch := range batches {
		payloads[i] = appendPayload{Children: batch}
	}
	return json.MarshalIndent(payloads, "", "  ")
}
