package sceneio

import "github.com/BurntSushi/toml"

type tomlDecoder struct{}

func (tomlDecoder) Decode(data []byte) (Document, error) {
	var doc Document
	meta, err := toml.Decode(string(data), &doc)
	if err != nil {
		return Document{}, err
	}
	if undec := meta.Undecoded(); len(undec) > 0 {
		return Document{}, &unknownFieldsError{fields: undec}
	}
	return doc, nil
}

type unknownFieldsError struct {
	fields []toml.Key
}

func (e *unknownFieldsError) Error() string {
	return "unknown fields: " + joinKeys(e.fields)
}

func joinKeys(keys []toml.Key) string {
	out := ""
	for i, k := range keys {
		if i > 0 {
			out += ", "
		}
		out += k.String()
	}
	return out
}
