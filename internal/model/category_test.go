package model

import (
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		isDir    bool
		expected CategoryID
		ok       bool
	}{
		{"report.pdf", false, CategoryDocuments, true},
		{"photo.jpg", false, CategoryImages, true},
		{"PHOTO.JPG", false, CategoryImages, true},
		{"song.flac", false, CategoryAudio, true},
		{"movie.mkv", false, CategoryVideos, true},
		{"sheet.xlsx", false, CategorySpreadsheets, true},
		{"slides.pptx", false, CategoryPresentations, true},
		{"tool.AppImage", false, CategoryExecutables, true},
		{"script.py", false, CategoryCode, true},
		{"backup.tar", false, CategoryArchives, true},
		{"project", true, CategoryFolders, true},
		{"pictures.old", true, CategoryFolders, true},
		{"README", false, "", false},
		{"unknownfile.xyz", false, "", false},
		{"noext.", false, "", false},
	}

	for _, test := range tests {
		category, ok := Classify(test.name, test.isDir)
		if ok != test.ok || category != test.expected {
			t.Errorf("Classify(%q, %v) = (%q, %v), expected (%q, %v)",
				test.name, test.isDir, category, ok, test.expected, test.ok)
		}
	}
}

func TestClassify_LongestSuffixWins(t *testing.T) {
	// Both .tar.gz and .gz are table entries; the longer suffix must win.
	category, ok := Classify("archive.tar.gz", false)
	if !ok || category != CategoryArchives {
		t.Fatalf("Classify(archive.tar.gz) = (%q, %v), expected archives", category, ok)
	}

	// Plain .gz still classifies on its own.
	category, ok = Classify("data.gz", false)
	if !ok || category != CategoryArchives {
		t.Fatalf("Classify(data.gz) = (%q, %v), expected archives", category, ok)
	}
}

func TestSplitSuffix(t *testing.T) {
	tests := []struct {
		name         string
		expectedStem string
		expectedExt  string
	}{
		{"report.pdf", "report", ".pdf"},
		{"archive.tar.gz", "archive", ".tar.gz"},
		{"photo.JPG", "photo", ".JPG"},
		{"unknownfile.xyz", "unknownfile", ".xyz"},
		{"project", "project", ""},
		{"my.notes.txt", "my.notes", ".txt"},
	}

	for _, test := range tests {
		stem, ext := SplitSuffix(test.name)
		if stem != test.expectedStem || ext != test.expectedExt {
			t.Errorf("SplitSuffix(%q) = (%q, %q), expected (%q, %q)",
				test.name, stem, ext, test.expectedStem, test.expectedExt)
		}
	}
}

func TestTableExtensionsUnique(t *testing.T) {
	seen := make(map[string]CategoryID)
	for _, category := range Table {
		for _, ext := range category.Extensions {
			if owner, exists := seen[ext]; exists {
				t.Errorf("Extension %s mapped to both %s and %s", ext, owner, category.ID)
			}
			seen[ext] = category.ID
		}
	}
}

func TestTableExtensionsLowerCaseWithDot(t *testing.T) {
	for _, category := range Table {
		for _, ext := range category.Extensions {
			if ext[0] != '.' {
				t.Errorf("Extension %q in %s is missing the leading dot", ext, category.ID)
			}
			for _, r := range ext {
				if r >= 'A' && r <= 'Z' {
					t.Errorf("Extension %q in %s is not lower-case", ext, category.ID)
				}
			}
		}
	}
}

func TestKnown(t *testing.T) {
	for _, category := range Table {
		if !Known(category.ID) {
			t.Errorf("Known(%q) = false for a table category", category.ID)
		}
	}

	if Known("torrents") {
		t.Error("Known should reject identifiers outside the table")
	}
}

func TestLabelFor(t *testing.T) {
	if label := LabelFor(CategoryImages); label != "Images" {
		t.Errorf("LabelFor(images) = %q, expected Images", label)
	}
	if label := LabelFor("torrents"); label != "torrents" {
		t.Errorf("LabelFor(unknown) = %q, expected raw identifier", label)
	}
}

func TestMappingClone(t *testing.T) {
	original := Mapping{CategoryImages: "/dest/img"}
	clone := original.Clone()

	clone[CategoryImages] = "/elsewhere"
	if original[CategoryImages] != "/dest/img" {
		t.Error("Clone should return an independent copy")
	}
}
