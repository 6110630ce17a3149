package handlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rohits-web03/chainnotes/internal/utils"
)

// GenerateState creates an OAuth state value: a random nonce followed by the
// encoded metadata, e.g. the sign-in flow.
func GenerateState(data map[string]string) (string, error) {
	nonce, err := utils.GenerateSecureToken(16)
	if err != nil {
		return "", fmt.Errorf("generate state nonce: %w", err)
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("marshal state data: %w", err)
	}

	return nonce + "." + base64.RawURLEncoding.EncodeToString(payload), nil
}

// DecodeState returns the metadata carried by a state value.
func DecodeState(state string) (map[string]string, error) {
	nonce, payload, ok := strings.Cut(state, ".")
	if !ok || nonce == "" || strings.Contains(payload, ".") {
		return nil, errors.New("invalid state format")
	}

	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decode state payload: %w", err)
	}

	var data map[string]string
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("unmarshal state: %w", err)
	}
	return data, nil
}
