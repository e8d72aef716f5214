package render

import (
	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// FromHTML converts note HTML straight to markdown, bypassing the block
// model. It trades block fidelity for speed and is only used for plain
// previews.
func FromHTML(html string) (string, error) {
	return htmltomarkdown.ConvertString(html)
}
