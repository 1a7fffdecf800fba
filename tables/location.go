package tables

import "fmt"

// FilePath returns the path segments of a file in the given folder
func FilePath(folder []string, file string) []string {
	res := make([]string, 0, len(folder)+1)
	res = append(res, folder...)
	return append(res, file)
}

// ValidatePath checks a configured folder path has no empty segments
func ValidatePath(path []string) error {
	for i, segment := range path {
		if segment == "" {
			return fmt.Errorf("path segment %d is empty", i)
		}
	}
	return nil
}
