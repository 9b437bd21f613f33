package base

import (
	"bytes"
	"testing"
)

func TestJsonSerialize_Deterministic(t *testing.T) {
	document := JsonMap{
		"zulu":  1,
		"alpha": JsonMap{"nested": true, "another": "value"},
		"mike":  []string{"a", "b"},
	}

	first := bytes.Buffer{}
	if err := JsonSerialize(document, &first, OptionJsonPrettyPrint(true)); err != nil {
		t.Fatalf("JsonSerialize: %v", err)
	}

	for i := 0; i < 10; i++ {
		again := bytes.Buffer{}
		if err := JsonSerialize(document, &again, OptionJsonPrettyPrint(true)); err != nil {
			t.Fatalf("JsonSerialize: %v", err)
		}
		if !bytes.Equal(first.Bytes(), again.Bytes()) {
			t.Fatalf("JsonSerialize: output is not deterministic\nfirst: %s\nagain: %s",
				first.String(), again.String())
		}
	}
}

func TestJsonUnmarshal_Roundtrip(t *testing.T) {
	buf := bytes.Buffer{}
	if err := JsonSerialize(JsonMap{"key": "value"}, &buf); err != nil {
		t.Fatalf("JsonSerialize: %v", err)
	}

	var decoded JsonMap
	if err := JsonUnmarshal(&decoded, buf.Bytes()); err != nil {
		t.Fatalf("JsonUnmarshal: %v", err)
	}
	if decoded["key"] != "value" {
		t.Errorf("JsonUnmarshal: expected %q, got %v", "value", decoded["key"])
	}
}
