package sceneio

import (
	"bytes"
	"encoding/json"
)

type jsonDecoder struct{}

func (jsonDecoder) Decode(data []byte) (Document, error) {
	var doc Document
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}
