package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/adrg/frontmatter"
)

// ParseSeed reads a markdown seed file: the menu lives in YAML frontmatter and
// the body, when present, becomes the description.
//
//	---
//	menu: main
//	items:
//	  - name: Home
//	    path: /
//	---
//	Primary navigation.
func ParseSeed(r io.Reader) (Document, error) {
	var doc Document
	body, err := frontmatter.MustParse(r, &doc)
	if err != nil {
		return Document{}, fmt.Errorf("importer: parse seed: %w", err)
	}
	if description := strings.TrimSpace(string(body)); description != "" && doc.Description == "" {
		doc.Description = description
	}

	// Run the seed through the same schema as JSON documents.
	encoded, err := json.Marshal(doc)
	if err != nil {
		return Document{}, fmt.Errorf("importer: encode seed: %w", err)
	}
	return decodeBytes(encoded)
}
