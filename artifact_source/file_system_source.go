package artifact_source

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/home-energy-audit/energy-import/constants"
	"github.com/home-energy-audit/energy-import/types"
	"github.com/mitchellh/go-homedir"
)

// FileSystemSource is a [Source] implementation that reads files below a local directory
// identifiers are slash separated paths relative to the base directory
type FileSystemSource struct {
	Config     *FileSystemSourceConfig
	Extensions types.ExtensionFilter
	baseDir    string
}

func NewFileSystemSource(config *FileSystemSourceConfig) (*FileSystemSource, error) {
	baseDir, err := homedir.Expand(config.BaseDir)
	if err != nil {
		return nil, err
	}
	slog.Info("Initialized FileSystemSource", "base_dir", baseDir, "extensions", config.Extensions)
	return &FileSystemSource{
		Config:     config,
		Extensions: types.NewExtensionFilter(config.Extensions),
		baseDir:    baseDir,
	}, nil
}

func (s *FileSystemSource) Identifier() string {
	return FileSystemSourceIdentifier
}

func (s *FileSystemSource) ListChildren(_ context.Context, parentId string) ([]types.RemoteFile, error) {
	dir, err := s.localPath(parentId)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	res := make([]types.RemoteFile, 0, len(entries))
	for _, e := range entries {
		id := e.Name()
		if parentId != constants.RootIdentifier {
			id = path.Join(parentId, e.Name())
		}
		res = append(res, types.RemoteFile{Id: id, Name: e.Name(), IsFolder: e.IsDir()})
	}
	return filterChildren(s.Extensions, res), nil
}

func (s *FileSystemSource) GetContent(_ context.Context, id string) (string, error) {
	if id == constants.RootIdentifier {
		return "", fmt.Errorf("cannot read content of the root folder")
	}
	p, err := s.localPath(id)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (s *FileSystemSource) Close() error {
	return nil
}

// localPath converts an identifier to a path on disk - identifiers may not escape the base directory
func (s *FileSystemSource) localPath(id string) (string, error) {
	if id == constants.RootIdentifier {
		return s.baseDir, nil
	}
	rel := filepath.FromSlash(id)
	if !filepath.IsLocal(rel) {
		return "", fmt.Errorf("invalid identifier '%s'", id)
	}
	return filepath.Join(s.baseDir, rel), nil
}
