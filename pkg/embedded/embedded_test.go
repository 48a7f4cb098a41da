package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/cursor.yaml": {Data: []byte("proximity: 30\n")},
	}
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	initialized = false

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(testFS())
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	// 重置状态以避免影响其他测试
	initialized = false
}

// TestNotInitialized 测试未初始化时的错误
func TestNotInitialized(t *testing.T) {
	initialized = false

	if _, err := Open("data/cursor.yaml"); !errors.Is(err, errNotInitialized) {
		t.Errorf("Open() before Init(): got %v", err)
	}
	if _, err := ReadFile("data/cursor.yaml"); !errors.Is(err, errNotInitialized) {
		t.Errorf("ReadFile() before Init(): got %v", err)
	}
	if Exists("data/cursor.yaml") {
		t.Error("Exists() should be false before Init()")
	}
}

func TestReadFile(t *testing.T) {
	Init(testFS())
	defer func() { initialized = false }()

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"plain", "data/cursor.yaml", "proximity: 30\n", false},
		{"dot prefix", "./data/cursor.yaml", "proximity: 30\n", false},
		{"missing", "data/page.yaml", "", true},
		{"wrong prefix", "assets/cursor.yaml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if string(got) != tt.want {
				t.Errorf("ReadFile(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}

	if !Exists("data/cursor.yaml") || Exists("data/page.yaml") {
		t.Error("Exists() mismatch")
	}
}
