package sceneio

import (
	"testing"
)

const sampleJSON = `{
  "camera": {"type":"perspective","position":[0,-5,0],"forward":[0,1,0],"fov":60,"mode":"y"},
  "objects": [
    {"type":"sphere","center":[0,0,0],"radius":1,"albedo":[1,0,0],"roughness":0.5,"metallic":0}
  ],
  "lights": [
    {"type":"directional","direction":[0,0,-1],"color":[1,1,1]}
  ],
  "skyColor": [0.4,0.6,0.9],
  "ambientLight": [0,0,0]
}`

func TestDecodeJSONRoundTrip(t *testing.T) {
	doc, err := Decode([]byte(sampleJSON), "scene.json", "")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(doc.Objects) != 1 || doc.Objects[0].Type != "sphere" {
		t.Fatalf("unexpected objects: %+v", doc.Objects)
	}
	if doc.Objects[0].Radius != 1 {
		t.Fatalf("expected radius 1, got %v", doc.Objects[0].Radius)
	}
	if doc.SkyColor.X != 0.4 {
		t.Fatalf("expected skyColor.x=0.4, got %v", doc.SkyColor.X)
	}
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	bad := `{"camera":{},"objects":[],"lights":[],"skyColor":[0,0,0],"ambientLight":[0,0,0],"bogus":1}`
	if _, err := Decode([]byte(bad), "scene.json", ""); err == nil {
		t.Fatal("expected an error for an unknown top-level field")
	}
}

func TestDecodeInfersTypeFromSuffix(t *testing.T) {
	if _, err := Decode([]byte(sampleJSON), "scene.json", ""); err != nil {
		t.Fatalf("expected suffix-inferred json decode to succeed: %v", err)
	}
}

func TestBuildTranslatesDocumentIntoScene(t *testing.T) {
	doc, err := Decode([]byte(sampleJSON), "scene.json", "")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	sc, err := Build(doc, 64, 64, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(sc.Objects) != 1 {
		t.Fatalf("expected 1 object, got %d", len(sc.Objects))
	}
	if len(sc.Lights) != 1 {
		t.Fatalf("expected 1 light, got %d", len(sc.Lights))
	}
}
