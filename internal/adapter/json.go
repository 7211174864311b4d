package adapter

import (
	"encoding/json"
)

//go:generate mockgen -source=json.go -destination=../mocks/mock_json.go -package=mocks -mock_names=JSON=MockJSON

// JSON abstracts JSON encoding so marshal failures can be simulated
// in tests.
type JSON interface {
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
}

type jsonCodec struct{}

// NewJSON returns a JSON codec backed by encoding/json.
func NewJSON() JSON {
	return &jsonCodec{}
}

func (j *jsonCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (j *jsonCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}
