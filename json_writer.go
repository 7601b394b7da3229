package nivesh

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// jsonObjectWriter helps construct a JSON object with a specific field
// order, so persisted files stay canonical and diff-friendly. Its zero
// value is ready to use.
type jsonObjectWriter struct {
	bytes.Buffer
	err error
}

// Append writes a key/value pair, marshaling the value.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	raw, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal %q: %w", key, err)
		return w
	}
	return w.AppendRaw(key, raw)
}

// Optional writes a key/value pair only when the string value is non-empty.
func (w *jsonObjectWriter) Optional(key, value string) *jsonObjectWriter {
	if value == "" {
		return w
	}
	return w.Append(key, value)
}

// AppendRaw writes a key with an already-marshaled value.
func (w *jsonObjectWriter) AppendRaw(key string, raw []byte) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	keyRaw, err := json.Marshal(key)
	if err != nil {
		w.err = err
		return w
	}
	w.Write(keyRaw)
	w.WriteString(":")
	w.Write(raw)
	w.WriteString(",")
	return w
}

// MarshalJSON implements the json.Marshaler interface.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	inner := bytes.TrimSuffix(w.Bytes(), []byte(","))
	var out bytes.Buffer
	out.WriteString("{")
	out.Write(inner)
	out.WriteString("}")
	return out.Bytes(), nil
}
