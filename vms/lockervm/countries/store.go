// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package countries

import (
	"encoding/json"
	"os"

	"github.com/google/renameio/v2"
)

const filePerms = 0o644

// Load reads a ban list written by Save.
func Load(path string) (*BanList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	list := &BanList{}
	if err := json.Unmarshal(data, list); err != nil {
		return nil, err
	}
	return list, nil
}

// Save atomically replaces the file at path with list.
func Save(path string, list *BanList) error {
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}
	return renameio.WriteFile(path, data, filePerms)
}
