package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnpath/site/catalog"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "courses.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCoursesBuiltin(t *testing.T) {
	courses, err := loadCourses("")
	require.NoError(t, err)
	assert.Equal(t, catalog.Builtin(), courses)
}

func TestLoadCoursesFromFile(t *testing.T) {
	path := writeFile(t, `[{"ID":"intro-go","Title":"Intro to Go","Syllabus":["Hello"]}]`)

	courses, err := loadCourses(path)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Intro to Go", courses[0].Title)
	assert.Equal(t, []string{"Hello"}, courses[0].Syllabus)
}

func TestLoadCoursesErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad json", `{`, "parse"},
		{"missing id", `[{"Title":"No id"}]`, "has no ID"},
		{"duplicate id", `[{"ID":"a"},{"ID":"a"}]`, "duplicate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadCourses(writeFile(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadCoursesMissingFile(t *testing.T) {
	_, err := loadCourses(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
