package store

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/folio/pkg/core"
)

// Codec defines how the document collection is encoded under core.KeyDocuments.
type Codec interface {
	// Name identifies the codec in configuration ("json", "yaml").
	Name() string
	// Encode serializes the full collection, preserving order.
	Encode(docs []core.Document) ([]byte, error)
	// Decode parses a previously encoded collection.
	Decode(data []byte) ([]core.Document, error)
}

// CodecFor returns the codec registered under name.
// An empty name selects JSON.
func CodecFor(name string) (Codec, error) {
	switch name {
	case "", "json":
		return JSONCodec{}, nil
	case "yaml", "yml":
		return YAMLCodec{}, nil
	default:
		return nil, fmt.Errorf("unknown codec: %s", name)
	}
}

// --- JSON Codec ---

// JSONCodec stores the collection as a JSON array of {id, title, content}
// objects, the layout the web editor keeps in local storage.
type JSONCodec struct{}

func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Encode(docs []core.Document) ([]byte, error) {
	if docs == nil {
		docs = []core.Document{}
	}
	return json.Marshal(docs)
}

func (JSONCodec) Decode(data []byte) ([]core.Document, error) {
	var docs []core.Document
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	return docs, nil
}

// --- YAML Codec ---

// YAMLCodec stores the collection as a YAML sequence. It is friendlier to
// hand edits of an fs-backed store.
type YAMLCodec struct{}

func (YAMLCodec) Name() string { return "yaml" }

func (YAMLCodec) Encode(docs []core.Document) ([]byte, error) {
	if docs == nil {
		docs = []core.Document{}
	}
	return yaml.Marshal(docs)
}

func (YAMLCodec) Decode(data []byte) ([]core.Document, error) {
	var docs []core.Document
	if err := yaml.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	return docs, nil
}
