package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Decode reads a JSON document and checks it against the menu schema before
// decoding it.
func Decode(r io.Reader) (Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("importer: read document: %w", err)
	}
	return decodeBytes(raw)
}

func decodeBytes(raw []byte) (Document, error) {
	var generic any
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	if err := decoder.Decode(&generic); err != nil {
		return Document{}, fmt.Errorf("importer: parse json: %w", err)
	}
	if err := validate(generic); err != nil {
		return Document{}, err
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Document{}, fmt.Errorf("importer: decode document: %w", err)
	}
	return doc, nil
}

// Encode writes the document as indented JSON.
func Encode(w io.Writer, doc Document) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("importer: encode document: %w", err)
	}
	return nil
}
