package sceneio

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

type yamlDecoder struct{}

func (yamlDecoder) Decode(data []byte) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}
