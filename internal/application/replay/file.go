package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// ErrNoFrames is returned when saving an empty recording.
var ErrNoFrames = errors.New("no frames to save")

// IsMsgpack reports whether filename selects the msgpack encoding.
// Everything else is written as indented JSON.
func IsMsgpack(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".msgpack", ".mpk":
		return true
	}
	return false
}

// Save writes data to filename, picking the encoding by extension.
func Save(filename string, data ReplayData) error {
	if len(data.Frames) == 0 {
		return ErrNoFrames
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if IsMsgpack(filename) {
		if err := msgpack.NewEncoder(file).Encode(data); err != nil {
			return fmt.Errorf("failed to encode replay: %w", err)
		}
		return nil
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	if IsMsgpack(filename) {
		err = msgpack.NewDecoder(file).Decode(&data)
	} else {
		err = json.NewDecoder(file).Decode(&data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}
