package artifact_source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListPrefix(t *testing.T) {
	tests := []struct {
		name       string
		rootPrefix string
		parentId   string
		want       string
	}{
		{name: "bucket root", rootPrefix: normalizePrefix(""), parentId: root, want: ""},
		{name: "configured root", rootPrefix: normalizePrefix("/exports/drive/"), parentId: root, want: "exports/drive/"},
		{name: "folder identifier", rootPrefix: "exports/", parentId: "exports/Data/", want: "exports/Data/"},
		{name: "identifier without delimiter", rootPrefix: "", parentId: "Data", want: "Data/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, listPrefix(tt.rootPrefix, tt.parentId))
		})
	}
}

func TestNameFromKey(t *testing.T) {
	assert.Equal(t, "Data", nameFromKey("exports/Data/"))
	assert.Equal(t, "2022-01-summary.json", nameFromKey("nest/2022/01/2022-01-summary.json"))
	assert.Equal(t, "top.csv", nameFromKey("top.csv"))
}

func TestChildrenQuery(t *testing.T) {
	assert.Equal(t, "'root' in parents and trashed=false", childrenQuery("root"))
	assert.Equal(t, `'it\'s' in parents and trashed=false`, childrenQuery("it's"))
}
