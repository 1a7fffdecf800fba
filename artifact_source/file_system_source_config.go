package artifact_source

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
)

const FileSystemSourceIdentifier = "file_system"

// FileSystemSourceConfig is the configuration for a [FileSystemSource], e.g. an unpacked Google Takeout export
type FileSystemSourceConfig struct {
	BaseDir    string   `hcl:"base_dir"`
	Extensions []string `hcl:"extensions,optional"`
}

func (c *FileSystemSourceConfig) Identifier() string {
	return FileSystemSourceIdentifier
}

func (c *FileSystemSourceConfig) Validate() error {
	if c.BaseDir == "" {
		return errors.New("base_dir is required")
	}
	dir, err := homedir.Expand(c.BaseDir)
	if err != nil {
		return err
	}
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("base_dir %s: %w", c.BaseDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("base_dir %s is not a directory", c.BaseDir)
	}
	return validateExtensions(c.Extensions)
}
