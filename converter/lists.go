package converter

import "github.com/jkrenek/zotero-notion-converter/notion"

// convertList flattens a list container into its item blocks. Only children
// that classify as list items survive; nested lists inside an item reach the
// item's children through the usual block assembly.
func (s *state) convertList(n Node) []notion.Block {
	var items []notion.Block

	for _, child := range n.Children() {
		parsed, ok := classifyNode(child).(BlockNode)
		if !ok || !parsed.Type.IsListItem() {
			continue
		}
		items = append(items, s.convertBlock(parsed, child))
	}

	return items
}
