// Command znc converts Zotero notes into Notion block payloads.
package main

func main() {
	Execute()
}
