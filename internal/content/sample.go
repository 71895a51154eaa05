package content

import _ "embed"

//go:embed sample.json
var sampleJSON []byte

// SampleJSON returns the starter content file written by `menubot init`.
func SampleJSON() []byte {
	return append([]byte(nil), sampleJSON...)
}

// SampleTree decodes the starter content.
func SampleTree() *Tree {
	t, err := Decode(sampleJSON)
	if err != nil {
		panic("content: invalid sample content: " + err.Error())
	}
	return t
}
