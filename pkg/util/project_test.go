package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateProjectPath(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name        string
		setupFunc   func() string
		expectError bool
		errorMsg    string
	}{
		{
			name: "valid directory",
			setupFunc: func() string {
				dir := filepath.Join(tmpDir, "valid_dir")
				os.Mkdir(dir, 0755)
				return dir
			},
			expectError: false,
		},
		{
			name: "non-existent path",
			setupFunc: func() string {
				return filepath.Join(tmpDir, "nonexistent")
			},
			expectError: true,
			errorMsg:    "cannot access path",
		},
		{
			name: "file instead of directory",
			setupFunc: func() string {
				file := filepath.Join(tmpDir, "file.txt")
				os.WriteFile(file, []byte("content"), 0644)
				return file
			},
			expectError: true,
			errorMsg:    "is not a directory",
		},
		{
			name: "path with trailing slash",
			setupFunc: func() string {
				dir := filepath.Join(tmpDir, "trailing_slash")
				os.Mkdir(dir, 0755)
				return dir + "/"
			},
			expectError: false,
		},
		{
			name: "nested directory",
			setupFunc: func() string {
				dir := filepath.Join(tmpDir, "parent", "child", "nested")
				os.MkdirAll(dir, 0755)
				return dir
			},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.setupFunc()
			result, err := ValidateProjectPath(path)

			if tt.expectError {
				if err == nil {
					t.Error("Expected error but got none")
				} else if tt.errorMsg != "" && !strings.Contains(err.Error(), tt.errorMsg) {
					t.Errorf("Expected error to contain '%s', got: %v", tt.errorMsg, err)
				}
				return
			}

			if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if !filepath.IsAbs(result) {
				t.Errorf("Expected absolute path, got: %s", result)
			}
		})
	}
}

func TestValidateProjectPathCleansPath(t *testing.T) {
	tmpDir := t.TempDir()

	testDir := filepath.Join(tmpDir, "test")
	os.Mkdir(testDir, 0755)

	messyPath := filepath.Join(tmpDir, "test", "..", "test", ".", ".")
	result, err := ValidateProjectPath(messyPath)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result != testDir {
		t.Errorf("Expected cleaned path '%s', got '%s'", testDir, result)
	}
}

func TestProjectName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"/path/to/myapp", "myapp"},
		{"/path/to/myapp/", "myapp"},
		{"./relative", "relative"},
		{".", "project"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ProjectName(tt.input); got != tt.expected {
				t.Errorf("ProjectName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
