package utils

import (
	"os"

	"github.com/BurntSushi/toml"
)

// FileExists reports whether path names an existing file.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureDir creates dirPath and any missing parents.
func EnsureDir(dirPath string) error {
	return os.MkdirAll(dirPath, 0755)
}

// SaveTOMLFile encodes data into a TOML file, replacing any existing one.
func SaveTOMLFile(data any, filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()
	return toml.NewEncoder(file).Encode(data)
}

// LoadTOMLFile decodes a TOML file into out.
func LoadTOMLFile(filePath string, out any) error {
	_, err := toml.DecodeFile(filePath, out)
	return err
}
