package jsonrepair

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestRepair_ValidJSONMatchesDirectParse(t *testing.T) {
	cases := []string{
		`{"a":1,"b":[true,null],"c":"x"}`,
		`[1,2,3]`,
		`"just a string"`,
		`42`,
	}
	for _, in := range cases {
		got, err := Repair(in)
		if err != nil {
			t.Fatalf("Repair(%q) error: %v", in, err)
		}
		var want any
		if err := json.Unmarshal([]byte(in), &want); err != nil {
			t.Fatalf("direct parse of %q: %v", in, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("Repair(%q) = %#v, want %#v", in, got, want)
		}
	}
}

func TestRepair_FixesCommonModelDefects(t *testing.T) {
	in := `{ disease: 'Rust', confidence: 92, }`
	got, err := Repair(in)
	if err != nil {
		t.Fatalf("Repair error: %v", err)
	}
	m, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("Repair returned %T, want map", got)
	}
	if m["disease"] != "Rust" {
		t.Fatalf("disease = %v, want Rust", m["disease"])
	}
	if m["confidence"] != float64(92) {
		t.Fatalf("confidence = %v, want 92", m["confidence"])
	}
	if len(m) != 2 {
		t.Fatalf("unexpected extra keys: %#v", m)
	}
}

func TestRepair_EquivalentToDefectFreeInput(t *testing.T) {
	dirty := `{
		// model chatter
		crops: ['rice', 'maize',],
		score: 7,
	}`
	clean := `{"crops":["rice","maize"],"score":7}`

	gotDirty, err := Repair(dirty)
	if err != nil {
		t.Fatalf("Repair(dirty) error: %v", err)
	}
	gotClean, err := Repair(clean)
	if err != nil {
		t.Fatalf("Repair(clean) error: %v", err)
	}
	if !reflect.DeepEqual(gotDirty, gotClean) {
		t.Fatalf("repaired structure differs:\n dirty: %#v\n clean: %#v", gotDirty, gotClean)
	}
}

func TestRepair_FailsLoudlyOnGarbage(t *testing.T) {
	got, err := Repair("the soil looks sandy, maybe add compost?")
	if err == nil {
		t.Fatalf("expected error, got %#v", got)
	}
	if !errors.Is(err, ErrNotRepairable) {
		t.Fatalf("error = %v, want ErrNotRepairable", err)
	}
	if got != nil {
		t.Fatalf("failure must not yield a value, got %#v", got)
	}
}

func TestExtractFenced(t *testing.T) {
	fenced := "Here you go:\n```json\n{\"diagnosis\":{\"disease\":\"Leaf Blight\"}}\n```\nHope that helps."
	got := ExtractFenced(fenced)
	if got != `{"diagnosis":{"disease":"Leaf Blight"}}` {
		t.Fatalf("ExtractFenced = %q", got)
	}

	plain := `{"ok":true}`
	if ExtractFenced(plain) != plain {
		t.Fatalf("unfenced text must pass through unchanged")
	}

	untagged := "```\n[1,2]\n```"
	if ExtractFenced(untagged) != "[1,2]" {
		t.Fatalf("untagged fence not extracted: %q", ExtractFenced(untagged))
	}
}

func TestTransformations(t *testing.T) {
	if got := StripLineComments("{\"a\":1 // note\n}"); strings.Contains(got, "note") {
		t.Fatalf("comment not stripped: %q", got)
	}
	if got := DropTrailingCommas(`{"a":[1,2,],}`); got != `{"a":[1,2]}` {
		t.Fatalf("DropTrailingCommas = %q", got)
	}
	if got := NormalizeQuotes(`{'a':'b'}`); got != `{"a":"b"}` {
		t.Fatalf("NormalizeQuotes = %q", got)
	}
	if got := QuoteBareKeys(`{a: 1, b_2: "x"}`); got != `{"a": 1, "b_2": "x"}` {
		t.Fatalf("QuoteBareKeys = %q", got)
	}
}
