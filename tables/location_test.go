package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilePath(t *testing.T) {
	folder := []string{"Data", "home_energy_audit"}
	got := FilePath(folder, "readme.txt")

	assert.Equal(t, []string{"Data", "home_energy_audit", "readme.txt"}, got)
	// the folder slice is not appended to in place
	assert.Len(t, folder, 2)
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		path    []string
		wantErr bool
	}{
		{name: "valid", path: []string{"Data", "noaa"}},
		{name: "empty path is the root", path: nil},
		{name: "empty segment", path: []string{"Data", ""}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
