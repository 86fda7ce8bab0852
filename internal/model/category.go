package model

import (
	"path/filepath"
	"strings"
)

// CategoryID identifies one of the fixed sorting categories.
type CategoryID string

const (
	CategoryDocuments     CategoryID = "documents"
	CategorySpreadsheets  CategoryID = "spreadsheets"
	CategoryPresentations CategoryID = "presentations"
	CategoryImages        CategoryID = "images"
	CategoryVideos        CategoryID = "videos"
	CategoryAudio         CategoryID = "audio"
	CategoryArchives      CategoryID = "archives"
	CategoryExecutables   CategoryID = "executables"
	CategoryCode          CategoryID = "code"
	CategoryFolders       CategoryID = "folders"
)

// Category couples a category identifier with its display label and the
// extensions it claims. Extensions are lower-case and include the leading
// dot; they must be unique across the whole table.
type Category struct {
	ID         CategoryID
	Label      string
	Extensions []string
}

// Table is the fixed, ordered category table. It is build-time data: the set
// of categories is not user-extensible, only their destinations are.
// The folders category has no extensions; directories are classified into it
// unconditionally.
var Table = []Category{
	{
		ID:         CategoryDocuments,
		Label:      "Documents",
		Extensions: []string{".pdf", ".docx", ".doc", ".txt", ".odt", ".rtf"},
	},
	{
		ID:         CategorySpreadsheets,
		Label:      "Spreadsheets",
		Extensions: []string{".xls", ".xlsx", ".csv", ".ods"},
	},
	{
		ID:         CategoryPresentations,
		Label:      "Presentations",
		Extensions: []string{".pptx", ".odp", ".key"},
	},
	{
		ID:         CategoryImages,
		Label:      "Images",
		Extensions: []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".webp", ".tiff"},
	},
	{
		ID:         CategoryVideos,
		Label:      "Videos",
		Extensions: []string{".mp4", ".mkv", ".avi", ".mov", ".webm", ".flv", ".wmv"},
	},
	{
		ID:         CategoryAudio,
		Label:      "Audio",
		Extensions: []string{".mp3", ".wav", ".aac", ".ogg", ".flac"},
	},
	{
		ID:         CategoryArchives,
		Label:      "Archives",
		Extensions: []string{".zip", ".rar", ".7z", ".tar", ".gz", ".tar.gz"},
	},
	{
		ID:         CategoryExecutables,
		Label:      "Executables",
		Extensions: []string{".exe", ".msi", ".sh", ".bat", ".appimage"},
	},
	{
		ID:         CategoryCode,
		Label:      "Code",
		Extensions: []string{".js", ".py", ".rs", ".cpp", ".java", ".html", ".css", ".json", ".ts"},
	},
	{
		ID:    CategoryFolders,
		Label: "Folders",
	},
}

// Known reports whether id names a category in the table.
func Known(id CategoryID) bool {
	for _, category := range Table {
		if category.ID == id {
			return true
		}
	}
	return false
}

// LabelFor returns the display label for a category, or the raw identifier
// when the category is unknown.
func LabelFor(id CategoryID) string {
	for _, category := range Table {
		if category.ID == id {
			return category.Label
		}
	}
	return string(id)
}

// Classify maps a directory entry name to its category. Directories always
// classify as folders. Files are matched case-insensitively against the
// table extensions; the longest matching suffix wins, so "archive.tar.gz"
// resolves to the ".tar.gz" entry rather than ".gz". Names without any
// matching extension are uncategorized and the second return value is false.
func Classify(name string, isDir bool) (CategoryID, bool) {
	if isDir {
		return CategoryFolders, true
	}

	lower := strings.ToLower(name)
	var best CategoryID
	bestLen := 0
	for _, category := range Table {
		for _, ext := range category.Extensions {
			if len(ext) > bestLen && strings.HasSuffix(lower, ext) {
				best = category.ID
				bestLen = len(ext)
			}
		}
	}

	if bestLen == 0 {
		return "", false
	}
	return best, true
}

// SplitSuffix splits a file name into stem and extension using the longest
// matching table suffix, so collision renaming keeps compound extensions
// intact ("archive.tar.gz" splits to "archive" + ".tar.gz"). Names with no
// table match fall back to filepath.Ext; names without any dot return an
// empty extension.
func SplitSuffix(name string) (stem, ext string) {
	lower := strings.ToLower(name)
	bestLen := 0
	for _, category := range Table {
		for _, candidate := range category.Extensions {
			if len(candidate) > bestLen && strings.HasSuffix(lower, candidate) {
				bestLen = len(candidate)
			}
		}
	}

	if bestLen == 0 {
		ext = filepath.Ext(name)
		return strings.TrimSuffix(name, ext), ext
	}
	cut := len(name) - bestLen
	return name[:cut], name[cut:]
}

// Mapping associates categories with absolute destination directories.
// Categories without an entry simply have no configured destination.
type Mapping map[CategoryID]string

// Clone returns an independent copy of the mapping.
func (m Mapping) Clone() Mapping {
	clone := make(Mapping, len(m))
	for id, dir := range m {
		clone[id] = dir
	}
	return clone
}
