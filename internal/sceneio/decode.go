package sceneio

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/seui-engine/raytracing-csg-renderer/internal/rterr"
)

// Decoder parses one scene-document wire format into a Document.
type Decoder interface {
	Decode(data []byte) (Document, error)
}

// decoders maps a scene-type name to its Decoder. jsonc/json5/hjson are
// accepted as JSON aliases: none of them reject standard JSON, and no
// dedicated decoder for any of the three is wired in here.
var decoders = map[string]Decoder{
	"json":  jsonDecoder{},
	"jsonc": jsonDecoder{},
	"json5": jsonDecoder{},
	"hjson": jsonDecoder{},
	"yaml":  yamlDecoder{},
	"yml":   yamlDecoder{},
	"toml":  tomlDecoder{},
}

// extensionType infers a scene-type from a file's suffix.
func extensionType(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return ext
}

// Decode parses scene bytes according to sceneType, or by inferring
// the type from path's suffix when sceneType is empty.
func Decode(data []byte, path, sceneType string) (Document, error) {
	t := strings.ToLower(sceneType)
	if t == "" {
		t = extensionType(path)
	}
	dec, ok := decoders[t]
	if !ok {
		return Document{}, rterr.NewInputError(path, fmt.Errorf("unknown scene format %q", t))
	}
	doc, err := dec.Decode(data)
	if err != nil {
		return Document{}, rterr.NewInputError(path, err)
	}
	return doc, nil
}
