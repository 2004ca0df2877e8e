package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/nel349/midnight-mobile-connector/internal/model"
)

// ErrStateNotFound reports that the ledger has no state for the address.
var ErrStateNotFound = errors.New("contract state not found")

// contractStateQuery is the single document this client sends. The indexer
// resolves one contract's state with its collection entries.
const contractStateQuery = `query ContractState($address: String!) {
  contractState(address: $address) {
    address
    kind
    cell
    entries { collection key value }
  }
}`

// IndexerClient is a client for the ledger indexer's GraphQL endpoint.
type IndexerClient struct {
	endpoint string
	client   *http.Client
}

// NewIndexerClient creates a new indexer client for the given endpoint.
func NewIndexerClient(endpoint string) *IndexerClient {
	return &IndexerClient{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// graphQLRequest is the POST body the indexer expects.
type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// stateEnvelope is the wire response for contractStateQuery. It is decoded
// exactly once, here, into the typed model - callers never see raw JSON.
type stateEnvelope struct {
	Data struct {
		ContractState *struct {
			Address string `json:"address"`
			Kind    string `json:"kind"`
			Cell    string `json:"cell"`
			Entries []struct {
				Collection string `json:"collection"`
				Key        string `json:"key"`
				Value      string `json:"value"`
			} `json:"entries"`
		} `json:"contractState"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// QueryContractState fetches one contract's ledger state and resolves its
// shape. Returns ErrStateNotFound if the ledger holds nothing for the
// address.
func (c *IndexerClient) QueryContractState(ctx context.Context, address string) (*model.ContractState, error) {
	body, err := json.Marshal(graphQLRequest{
		Query:     contractStateQuery,
		Variables: map[string]any{"address": address},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query indexer: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to query indexer: status %d", resp.StatusCode)
	}

	var envelope stateEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode indexer response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return nil, fmt.Errorf("indexer error: %s", envelope.Errors[0].Message)
	}

	raw := envelope.Data.ContractState
	if raw == nil {
		return nil, ErrStateNotFound
	}

	state := &model.ContractState{Address: raw.Address}
	switch raw.Kind {
	case "cell":
		state.Kind = model.StateKindCell
		state.Cell = raw.Cell
	case "map":
		state.Kind = model.StateKindMap
		state.Entries = make([]model.CollectionEntry, 0, len(raw.Entries))
		for _, e := range raw.Entries {
			state.Entries = append(state.Entries, model.CollectionEntry{
				Collection: e.Collection,
				Key:        e.Key,
				Value:      e.Value,
			})
		}
	case "null", "":
		state.Kind = model.StateKindNull
	default:
		return nil, fmt.Errorf("indexer returned unknown state kind %q", raw.Kind)
	}
	return state, nil
}

// CollectionHasMember reports whether the contract's collection contains
// the key.
func (c *IndexerClient) CollectionHasMember(ctx context.Context, address, collection, key string) (bool, error) {
	state, err := c.QueryContractState(ctx, address)
	if err != nil {
		return false, err
	}
	return state.HasMember(collection, key), nil
}

// CollectionLookup returns the value stored under (collection, key), with
// ok reporting membership. Absence is a normal outcome, not an error.
func (c *IndexerClient) CollectionLookup(ctx context.Context, address, collection, key string) (value string, ok bool, err error) {
	state, err := c.QueryContractState(ctx, address)
	if err != nil {
		return "", false, err
	}
	value, ok = state.Lookup(collection, key)
	return value, ok, nil
}
