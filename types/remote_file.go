package types

import "fmt"

// RemoteFile is a single entry returned when listing the children of a node in a remote hierarchy
type RemoteFile struct {
	// Id is the opaque identifier used to address the node in subsequent calls
	Id string `json:"id"`
	// Name is the display name, which is what path segments are matched against
	Name     string `json:"name"`
	IsFolder bool   `json:"is_folder"`
}

func (f RemoteFile) String() string {
	if f.IsFolder {
		return fmt.Sprintf("%s/ (%s)", f.Name, f.Id)
	}
	return fmt.Sprintf("%s (%s)", f.Name, f.Id)
}
