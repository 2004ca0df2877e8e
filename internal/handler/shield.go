package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nel349/midnight-mobile-connector/internal/client"
	"github.com/nel349/midnight-mobile-connector/internal/config"
	"github.com/nel349/midnight-mobile-connector/internal/crypto"
	"github.com/nel349/midnight-mobile-connector/internal/model"
	"github.com/nel349/midnight-mobile-connector/shield"
)

// ShieldHandler holds configuration for shield wallet operations
type ShieldHandler struct {
	filePath string
	network  shield.Network
	roles    []shield.Role
	codec    *shield.Codec
	indexer  *client.IndexerClient
}

// NewShieldHandler creates a new ShieldHandler with config values
func NewShieldHandler() (*ShieldHandler, error) {
	filePath := config.GetShieldFilePath()
	if filePath == "" {
		return nil, errors.New("SHIELD_FILE_PATH not set")
	}

	network, err := shield.ParseNetwork(config.GetNetwork())
	if err != nil {
		return nil, err
	}

	// Full role set by default; single external-spend role when the target
	// wallet only understands that one.
	roles := shield.AllRoles
	if config.GetCompatSingleRole() {
		roles = []shield.Role{shield.RoleNightExternal}
	}

	return &ShieldHandler{
		filePath: filePath,
		network:  network,
		roles:    roles,
		codec:    shield.NewCodec(),
		indexer:  client.NewIndexerClient(config.GetIndexerURL()),
	}, nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError writes the consistent JSON error body.
func writeError(w http.ResponseWriter, status int, err error, code string) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error(), Code: code})
}

// walletResponse maps a constructed wallet onto the API response.
func walletResponse(message string, info *shield.WalletInfo) model.GenerateResponse {
	skipped := make([]string, 0, len(info.SkippedRoles))
	for _, r := range info.SkippedRoles {
		skipped = append(skipped, string(r))
	}
	return model.GenerateResponse{
		Success:      true,
		Message:      message,
		Network:      string(info.Network),
		Addresses:    info.Addresses,
		SkippedRoles: skipped,
		Mnemonic:     info.Mnemonic,
	}
}

// Generate handles POST /shield/generate
// @Summary      Generate new wallet
// @Description  Generates a new shield wallet, saves the encrypted .swt file and returns the address book plus the one-time recovery phrase
// @Tags         shield
// @Accept       json
// @Produce      json
// @Success      200  {object}  model.GenerateResponse
// @Failure      409  {object}  model.ErrorResponse
// @Router       /shield/generate [post]
func (h *ShieldHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	// Get password as []byte, use it, then zero it immediately
	passwordBytes, err := config.GetWalletPasswordBytes()
	if err != nil {
		writeError(w, http.StatusBadRequest, err, "")
		return
	}
	defer clear(passwordBytes) // Always clear password from memory

	info, err := shield.GenerateWallet(h.filePath, passwordBytes, h.network, h.roles)
	if err != nil {
		if shield.IsFileExistsError(err) {
			writeError(w, http.StatusConflict, err, "wallet_exists")
			return
		}
		writeError(w, http.StatusInternalServerError, err, "")
		return
	}

	writeJSON(w, http.StatusOK, walletResponse("Wallet generated successfully", info))
}

// Restore handles POST /shield/restore
// @Summary      Restore wallet from recovery phrase
// @Description  Rebuilds the wallet deterministically from a 24-word recovery phrase and saves the encrypted .swt file
// @Tags         shield
// @Accept       json
// @Produce      json
// @Param        request  body      model.RestoreRequest  true  "Recovery phrase"
// @Success      200      {object}  model.GenerateResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      409      {object}  model.ErrorResponse
// @Router       /shield/restore [post]
func (h *ShieldHandler) Restore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.RestoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err, "")
		return
	}
	if req.Mnemonic == "" {
		writeError(w, http.StatusBadRequest, errors.New("mnemonic is required"), "")
		return
	}

	passwordBytes, err := config.GetWalletPasswordBytes()
	if err != nil {
		writeError(w, http.StatusBadRequest, err, "")
		return
	}
	defer clear(passwordBytes)

	info, err := shield.RestoreWallet(h.filePath, passwordBytes, h.network, h.roles, req.Mnemonic)
	if err != nil {
		switch {
		case shield.IsFileExistsError(err):
			writeError(w, http.StatusConflict, err, "wallet_exists")
		case errors.Is(err, shield.ErrInvalidMnemonic), errors.Is(err, shield.ErrInvalidSeed):
			writeError(w, http.StatusBadRequest, err, "invalid_mnemonic")
		default:
			writeError(w, http.StatusInternalServerError, err, "")
		}
		return
	}

	// The caller already has the phrase; don't echo it back on restore.
	info.Mnemonic = ""
	writeJSON(w, http.StatusOK, walletResponse("Wallet restored successfully", info))
}

// Addresses handles GET /shield/addresses
// @Summary      Get wallet address book
// @Description  Reads the per-role addresses and QR code from the .swt file (no password required)
// @Tags         shield
// @Produce      json
// @Success      200  {object}  model.AddressBookResponse
// @Router       /shield/addresses [get]
func (h *ShieldHandler) Addresses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	walletFile, err := crypto.ReadAddressBook(h.filePath)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err, "")
		return
	}

	writeJSON(w, http.StatusOK, model.AddressBookResponse{
		Network:   walletFile.Network,
		Addresses: walletFile.Addresses,
		QR:        walletFile.QR,
	})
}

// Validate handles GET /shield/validate
// @Summary      Validate an address
// @Description  Checks structure and checksum of an arbitrary address string; an invalid address is a normal 200 response
// @Tags         shield
// @Produce      json
// @Param        address  query     string  true  "Address to validate"
// @Success      200      {object}  model.ValidateResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /shield/validate [get]
func (h *ShieldHandler) Validate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	address := r.URL.Query().Get("address")
	if address == "" {
		writeError(w, http.StatusBadRequest, errors.New("address query parameter is required"), "")
		return
	}

	result := h.codec.Validate(address)
	writeJSON(w, http.StatusOK, model.ValidateResponse{
		Address: address,
		Valid:   result.Valid,
		Network: string(result.Network),
		Reason:  string(result.Reason),
	})
}

// ContractState handles GET /shield/contract-state
// @Summary      Query contract state
// @Description  Fetches a contract's ledger state from the indexer; with collection and key parameters it answers a single membership/lookup
// @Tags         shield
// @Produce      json
// @Param        address     query     string  true   "Contract address"
// @Param        collection  query     string  false  "Collection name (requires key)"
// @Param        key         query     string  false  "Collection key (requires collection)"
// @Success      200  {object}  model.ContractStateResponse
// @Failure      404  {object}  model.ErrorResponse
// @Router       /shield/contract-state [get]
func (h *ShieldHandler) ContractState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	address := q.Get("address")
	if address == "" {
		writeError(w, http.StatusBadRequest, errors.New("address query parameter is required"), "")
		return
	}

	collection, key := q.Get("collection"), q.Get("key")
	if (collection == "") != (key == "") {
		writeError(w, http.StatusBadRequest, errors.New("collection and key must be provided together"), "")
		return
	}

	if collection != "" {
		value, member, err := h.indexer.CollectionLookup(r.Context(), address, collection, key)
		if err != nil {
			if errors.Is(err, client.ErrStateNotFound) {
				writeError(w, http.StatusNotFound, err, "state_not_found")
				return
			}
			writeError(w, http.StatusBadGateway, err, "")
			return
		}
		writeJSON(w, http.StatusOK, model.CollectionLookupResponse{
			Address:    address,
			Collection: collection,
			Key:        key,
			Member:     member,
			Value:      value,
		})
		return
	}

	state, err := h.indexer.QueryContractState(r.Context(), address)
	if err != nil {
		if errors.Is(err, client.ErrStateNotFound) {
			writeError(w, http.StatusNotFound, err, "state_not_found")
			return
		}
		writeError(w, http.StatusBadGateway, err, "")
		return
	}

	writeJSON(w, http.StatusOK, model.ContractStateResponse{State: state})
}
