package artifact_source

import (
	"context"
	"errors"
	"testing"

	"github.com/home-energy-audit/energy-import/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTree creates root/Data/home_energy_audit/{noaa/readme.txt, sense.csv}
func buildTree() (*memorySource, map[string]string) {
	m := newMemorySource()
	ids := map[string]string{}
	ids["Data"] = m.addFolder(root, "Data")
	ids["Other"] = m.addFolder(root, "Other")
	ids["home_energy_audit"] = m.addFolder(ids["Data"], "home_energy_audit")
	ids["noaa"] = m.addFolder(ids["home_energy_audit"], "noaa")
	ids["readme.txt"] = m.addFile(ids["noaa"], "readme.txt", "readme")
	ids["sense.csv"] = m.addFile(ids["home_energy_audit"], "sense.csv", "a,b")
	return m, ids
}

func TestResolvePath(t *testing.T) {
	tests := []struct {
		name         string
		segments     []string
		wantId       string
		wantNotFound bool
		wantCalls    int
	}{
		{
			name:      "file",
			segments:  []string{"Data", "home_energy_audit", "noaa", "readme.txt"},
			wantId:    "readme.txt",
			wantCalls: 4,
		},
		{
			name:      "folder",
			segments:  []string{"Data", "home_energy_audit"},
			wantId:    "home_energy_audit",
			wantCalls: 2,
		},
		{
			name:         "missing last segment",
			segments:     []string{"Data", "home_energy_audit", "missing.csv"},
			wantNotFound: true,
			wantCalls:    3,
		},
		{
			name:         "missing second to last segment",
			segments:     []string{"Data", "missing", "readme.txt"},
			wantNotFound: true,
			wantCalls:    2,
		},
		{
			name:         "name exists at a different level",
			segments:     []string{"Data", "noaa"},
			wantNotFound: true,
			wantCalls:    2,
		},
		{
			name:         "repeated name which misses the second time",
			segments:     []string{"Data", "Data"},
			wantNotFound: true,
			wantCalls:    2,
		},
		{
			name:      "empty path",
			segments:  nil,
			wantId:    root,
			wantCalls: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ids := buildTree()

			got, err := ResolvePath(context.Background(), m, tt.segments)
			assert.Len(t, m.listCalls, tt.wantCalls)
			if tt.wantNotFound {
				require.Error(t, err)
				assert.True(t, IsNotFound(err))
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			want := tt.wantId
			if id, ok := ids[tt.wantId]; ok {
				want = id
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestResolvePath_ListsChildrenOfPreviousSegment(t *testing.T) {
	m, ids := buildTree()

	_, err := ResolvePath(context.Background(), m, []string{"Data", "home_energy_audit", "sense.csv"})
	require.NoError(t, err)

	assert.Equal(t, []string{root, ids["Data"], ids["home_energy_audit"]}, m.listCalls)
}

func TestResolvePath_FirstMatchWins(t *testing.T) {
	m := newMemorySource()
	first := m.addFile(root, "dup.csv", "1")
	m.addFile(root, "dup.csv", "2")

	got, err := ResolvePath(context.Background(), m, []string{"dup.csv"})
	require.NoError(t, err)
	assert.Equal(t, first, got)
}

func TestResolvePath_RemoteFailure(t *testing.T) {
	m, _ := buildTree()
	remoteErr := errors.New("quota exceeded")
	m.listErr = remoteErr

	_, err := ResolvePath(context.Background(), m, []string{"Data"})
	assert.ErrorIs(t, err, remoteErr)
	assert.False(t, IsNotFound(err))
}

func TestResolvePathMap(t *testing.T) {
	m, ids := buildTree()

	got, err := ResolvePathMap(context.Background(), m, []string{"Data", "missing", "readme.txt"})
	require.NoError(t, err)

	assert.Equal(t, IdentifierMap{root: root, "Data": ids["Data"]}, got)

	id, ok := got.Lookup("Data")
	assert.True(t, ok)
	assert.Equal(t, ids["Data"], id)
	_, ok = got.Lookup("readme.txt")
	assert.False(t, ok)
}

func TestResolvePathMap_Full(t *testing.T) {
	m, ids := buildTree()

	got, err := ResolvePathMap(context.Background(), m, []string{"Data", "home_energy_audit", "noaa", "readme.txt"})
	require.NoError(t, err)

	assert.Equal(t, IdentifierMap{
		root:                root,
		"Data":              ids["Data"],
		"home_energy_audit": ids["home_energy_audit"],
		"noaa":              ids["noaa"],
		"readme.txt":        ids["readme.txt"],
	}, got)
}

// every resolved identifier has an ancestor chain matching the path
func TestResolvePath_AncestorChain(t *testing.T) {
	m, _ := buildTree()
	segments := []string{"Data", "home_energy_audit", "noaa", "readme.txt"}

	id, err := ResolvePath(context.Background(), m, segments)
	require.NoError(t, err)

	parents := parentIndex(m)
	for i := len(segments) - 1; i >= 0; i-- {
		p, ok := parents[id]
		require.True(t, ok)
		assert.Equal(t, segments[i], p.child.Name)
		id = p.parentId
	}
	assert.Equal(t, root, id)
}

type parentEntry struct {
	parentId string
	child    types.RemoteFile
}

func parentIndex(m *memorySource) map[string]parentEntry {
	res := map[string]parentEntry{}
	for parent, children := range m.children {
		for _, c := range children {
			res[c.Id] = parentEntry{parentId: parent, child: c}
		}
	}
	return res
}
