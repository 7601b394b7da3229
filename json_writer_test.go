package nivesh

import "testing"

func TestJSONObjectWriter(t *testing.T) {
	var w jsonObjectWriter
	w.Append("a", 1).
		Optional("skipped", "").
		Optional("b", "two").
		AppendRaw("c", []byte(`{"nested":true}`))

	raw, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	want := `{"a":1,"b":"two","c":{"nested":true}}`
	if string(raw) != want {
		t.Errorf("MarshalJSON() = %s, want %s", raw, want)
	}
}

func TestJSONObjectWriterEmpty(t *testing.T) {
	var w jsonObjectWriter
	raw, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	if string(raw) != "{}" {
		t.Errorf("MarshalJSON() = %s, want {}", raw)
	}
}

func TestJSONObjectWriterKeepsFirstError(t *testing.T) {
	var w jsonObjectWriter
	w.Append("bad", func() {}) // functions cannot marshal
	w.Append("good", 1)
	if _, err := w.MarshalJSON(); err == nil {
		t.Error("MarshalJSON() = nil, want the marshal error")
	}
}
