package naming

import "path/filepath"

const (
	// RunFolderPrefix starts the name of every run output folder.
	RunFolderPrefix = "base_36_images_of_"

	// ImageExt is used for every copy regardless of the source extension.
	ImageExt = ".jpg"
)

// FileName returns the destination file name for an identifier.
func FileName(id string) string {
	return id + ImageExt
}

// OutputPath builds the destination of an image copy.
//
//	flat:    <outputRoot>/<identifier>.jpg
//	folders: <outputRoot>/<date>/<identifier>.jpg
//
// ok is false when m is nil.
func OutputPath(outputRoot string, m *Moment, acronym string, useFolders bool) (string, bool) {
	id, ok := Identifier(m, acronym)
	if !ok {
		return "", false
	}
	if !useFolders {
		return filepath.Join(outputRoot, FileName(id)), true
	}
	date, _ := Date(m)
	return filepath.Join(outputRoot, date, FileName(id)), true
}
