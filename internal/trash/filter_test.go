package trash

import (
	"fmt"
	"testing"
	"time"

	"github.com/babarot/saidan/internal/config"
)

// TestItem is a mock implementation of Filterable for testing
type TestItem struct {
	name      string
	path      string
	deletedAt time.Time
}

func (t TestItem) GetName() string {
	return t.name
}

func (t TestItem) GetPath() string {
	return t.path
}

func (t TestItem) GetDeletedAt() time.Time {
	return t.deletedAt
}

// createTestItems generates a slice of test items for various test scenarios
func createTestItems() []TestItem {
	now := time.Now()
	return []TestItem{
		{name: "file1.txt", path: "/trash/file1.txt", deletedAt: now.Add(-24 * time.Hour)},
		{name: "file2.log", path: "/trash/file2.log", deletedAt: now.Add(-48 * time.Hour)},
		{name: "important.txt", path: "/trash/important.txt", deletedAt: now.Add(-72 * time.Hour)},
		{name: "temp.tmp", path: "/trash/temp.tmp", deletedAt: now.Add(-400 * 24 * time.Hour)},
	}
}

// createMockDirSizeFunc creates a mock DirSize function for testing
func createMockDirSizeFunc() func(string) (int64, error) {
	return func(path string) (int64, error) {
		sizemap := map[string]int64{
			"/trash/file1.txt":     100,
			"/trash/file2.log":     1024,
			"/trash/important.txt": 10240,
			"/trash/temp.tmp":      102400,
		}
		size, exists := sizemap[path]
		if !exists {
			return 0, fmt.Errorf("path not found in mock")
		}
		return size, nil
	}
}

func assertNames[T Filterable](t *testing.T, items []T, want []string) {
	t.Helper()
	if len(items) != len(want) {
		t.Fatalf("got %d items, want %d", len(items), len(want))
	}
	for _, item := range items {
		found := false
		for _, name := range want {
			if item.GetName() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("unexpected item in filtered list: %s", item.GetName())
		}
	}
}

func TestRejectBySize(t *testing.T) {
	items := createTestItems()
	mockDirSizeFunc := createMockDirSizeFunc()

	testCases := []struct {
		name          string
		sizeConfig    config.SizeConfig
		expectedNames []string
	}{
		{
			name:          "No size filter",
			sizeConfig:    config.SizeConfig{},
			expectedNames: []string{"file1.txt", "file2.log", "important.txt", "temp.tmp"},
		},
		{
			name:          "Filter by min size",
			sizeConfig:    config.SizeConfig{Min: "1KB"},
			expectedNames: []string{"file2.log", "important.txt", "temp.tmp"},
		},
		{
			name:          "Filter by max size",
			sizeConfig:    config.SizeConfig{Max: "10KB"},
			expectedNames: []string{"file1.txt", "file2.log"},
		},
		{
			name:          "Filter by both min and max size",
			sizeConfig:    config.SizeConfig{Min: "1KB", Max: "20KB"},
			expectedNames: []string{"file2.log", "important.txt"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			filtered := rejectBySize(items, tc.sizeConfig, mockDirSizeFunc)
			assertNames(t, filtered, tc.expectedNames)
		})
	}
}

func TestRejectByNames(t *testing.T) {
	items := createTestItems()
	filtered := rejectByNames(items, []string{"temp.tmp", "file2.log"})
	assertNames(t, filtered, []string{"file1.txt", "important.txt"})
}

func TestRejectByPatterns(t *testing.T) {
	items := createTestItems()
	filtered := rejectByPatterns(items, []string{`^file\d`})
	assertNames(t, filtered, []string{"important.txt", "temp.tmp"})
}

func TestRejectByGlobs(t *testing.T) {
	items := createTestItems()
	filtered := rejectByGlobs(items, []string{"*.txt"})
	assertNames(t, filtered, []string{"file2.log", "temp.tmp"})
}

func TestFilterByPeriod(t *testing.T) {
	items := createTestItems()

	filtered := filterByPeriod(items, 365)
	assertNames(t, filtered, []string{"file1.txt", "file2.log", "important.txt"})

	// Zero means no period filtering
	filtered = filterByPeriod(items, 0)
	assertNames(t, filtered, []string{"file1.txt", "file2.log", "important.txt", "temp.tmp"})
}
