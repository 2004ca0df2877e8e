package model

// StateKind tags the shape of a contract's ledger state. The shape is
// resolved once, at the indexer client boundary, so callers never inspect
// raw JSON.
type StateKind string

const (
	// StateKindCell is a single opaque value.
	StateKindCell StateKind = "cell"
	// StateKindMap is a set of named collections of key/value entries.
	StateKindMap StateKind = "map"
	// StateKindNull is deployed-but-empty state.
	StateKindNull StateKind = "null"
)

// CollectionEntry is one key/value pair inside a named collection of a
// map-shaped contract state. Key and Value are hex-encoded ledger bytes.
type CollectionEntry struct {
	Collection string `json:"collection"`
	Key        string `json:"key"`
	Value      string `json:"value"`
}

// ContractState is the typed view of one contract's on-chain state.
type ContractState struct {
	Address string            `json:"address"`
	Kind    StateKind         `json:"kind"`
	Cell    string            `json:"cell,omitempty"` // hex, kind == cell only
	Entries []CollectionEntry `json:"entries,omitempty"`
}

// HasMember reports whether the collection contains the key.
func (s *ContractState) HasMember(collection, key string) bool {
	_, ok := s.Lookup(collection, key)
	return ok
}

// Lookup returns the value stored under (collection, key), if any.
func (s *ContractState) Lookup(collection, key string) (string, bool) {
	if s.Kind != StateKindMap {
		return "", false
	}
	for _, e := range s.Entries {
		if e.Collection == collection && e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// ContractStateResponse represents the response for GET /shield/contract-state.
type ContractStateResponse struct {
	State *ContractState `json:"state"`
}

// CollectionLookupResponse represents the response for
// GET /shield/contract-state with collection and key parameters.
type CollectionLookupResponse struct {
	Address    string `json:"address"`
	Collection string `json:"collection"`
	Key        string `json:"key"`
	Member     bool   `json:"member"`
	Value      string `json:"value,omitempty"`
}
