package artifact_source

import (
	"context"
	"fmt"

	"github.com/home-energy-audit/energy-import/constants"
	"github.com/home-energy-audit/energy-import/types"
)

// memorySource is an in-memory Source - children are keyed by parent identifier
type memorySource struct {
	children map[string][]types.RemoteFile
	content  map[string]string

	listCalls []string
	listErr   error
}

func newMemorySource() *memorySource {
	return &memorySource{
		children: make(map[string][]types.RemoteFile),
		content:  make(map[string]string),
	}
}

// addFolder adds a folder below parent and returns its identifier
func (m *memorySource) addFolder(parent, name string) string {
	id := m.nextId()
	m.children[parent] = append(m.children[parent], types.RemoteFile{Id: id, Name: name, IsFolder: true})
	return id
}

func (m *memorySource) addFile(parent, name, content string) string {
	id := m.nextId()
	m.children[parent] = append(m.children[parent], types.RemoteFile{Id: id, Name: name})
	m.content[id] = content
	return id
}

func (m *memorySource) nextId() string {
	return fmt.Sprintf("id-%d", len(m.content)+m.folderCount()+1)
}

func (m *memorySource) folderCount() int {
	count := 0
	for _, c := range m.children {
		for _, f := range c {
			if f.IsFolder {
				count++
			}
		}
	}
	return count
}

func (m *memorySource) Identifier() string {
	return "memory"
}

func (m *memorySource) ListChildren(_ context.Context, parentId string) ([]types.RemoteFile, error) {
	m.listCalls = append(m.listCalls, parentId)
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.children[parentId], nil
}

func (m *memorySource) GetContent(_ context.Context, id string) (string, error) {
	c, ok := m.content[id]
	if !ok {
		return "", fmt.Errorf("no file %s", id)
	}
	return c, nil
}

func (m *memorySource) Close() error {
	return nil
}

var _ Source = (*memorySource)(nil)

var root = constants.RootIdentifier
