package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"inteko-cli/fs"
	"inteko-cli/types"
)

// Current is the process-wide session. Every command reads it through
// this one variable instead of re-reading storage per screen, so clearing
// or replacing the session is observed everywhere in one step.
var Current *types.ClientAuth

var subscribers []func(*types.ClientAuth)

// Subscribe registers a callback fired whenever the session is set or
// cleared. The callback receives the new session, or nil on sign out.
func Subscribe(fn func(*types.ClientAuth)) {
	subscribers = append(subscribers, fn)
}

func notifySubscribers() {
	for _, fn := range subscribers {
		fn(Current)
	}
}

func loadAuth() (*types.ClientAuth, error) {
	bytes, err := os.ReadFile(fs.HomeAuthPath)

	if err != nil {
		if os.IsNotExist(err) {
			// not authenticated
			return nil, nil
		}
		return nil, fmt.Errorf("error reading auth.json: %v", err)
	}

	var auth types.ClientAuth
	err = json.Unmarshal(bytes, &auth)
	if err != nil {
		return nil, fmt.Errorf("error unmarshalling auth.json: %v", err)
	}

	return &auth, nil
}

func setAuth(auth *types.ClientAuth) error {
	Current = auth

	err := writeCurrentAuth()

	if err != nil {
		return fmt.Errorf("error writing auth: %v", err)
	}

	notifySubscribers()

	return nil
}

// writeCurrentAuth persists the token and the profile in a single file
// write via a temp-file rename, so a load can never observe one without
// the other.
func writeCurrentAuth() error {
	if Current == nil {
		return fmt.Errorf("error writing auth: auth not loaded")
	}

	bytes, err := json.Marshal(Current)

	if err != nil {
		return fmt.Errorf("error marshalling auth: %v", err)
	}

	tmpPath := filepath.Join(filepath.Dir(fs.HomeAuthPath), ".auth.json.tmp")

	err = os.WriteFile(tmpPath, bytes, 0600)

	if err != nil {
		return fmt.Errorf("error writing auth: %v", err)
	}

	err = os.Rename(tmpPath, fs.HomeAuthPath)

	if err != nil {
		return fmt.Errorf("error writing auth: %v", err)
	}

	return nil
}

// ClearAuth removes the stored session. Both the token and the cached
// profile live in auth.json, so one remove drops both.
func ClearAuth() error {
	err := os.Remove(fs.HomeAuthPath)

	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error removing auth.json: %v", err)
	}

	Current = nil

	notifySubscribers()

	return nil
}
