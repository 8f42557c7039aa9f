package list

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML implements yaml.Marshaler. A list is encoded as a sequence.
func (l *List[T]) MarshalYAML() (any, error) {
	return l.values(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. It replaces the content of the
// list with the elements of a sequence.
func (l *List[T]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: cannot load list from %s", value.Line, kindName(value.Kind))
	}
	var vs []T
	if err := value.Decode(&vs); err != nil {
		return err
	}
	l.reset(vs)
	return nil
}

// MarshalJSON implements json.Marshaler. A list is encoded as an array.
func (l *List[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.values())
}

// UnmarshalJSON implements json.Unmarshaler. It replaces the content of the
// list with the elements of an array.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	var vs []T
	if err := json.Unmarshal(data, &vs); err != nil {
		return err
	}
	l.reset(vs)
	return nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown node"
	}
}
