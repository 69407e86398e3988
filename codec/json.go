package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// Portable forms are plain structs of scalars and (index, value) lists,
// which JSON represents losslessly. Use JSON when the lowest-dependency
// option matters more than throughput.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the default codec used by the library.
//
// Stored files are self-describing (they record the codec name) and are
// opened by selecting the appropriate codec by name, so changing the
// default does not break existing data.
var Default Codec = GoJSON{}
