package embedded

import (
	"testing"
	"testing/fstest"

	"github.com/decker502/birthday24/data"
)

func testFS() (fstest.MapFS, fstest.MapFS) {
	assets := fstest.MapFS{
		"assets/images/cover.jpg": &fstest.MapFile{Data: []byte("jpg")},
	}
	data := fstest.MapFS{
		"content.yaml": &fstest.MapFile{Data: []byte("recipient: Bubu\n")},
		"other.yaml":   &fstest.MapFile{Data: []byte("x: 1\n")},
	}
	return assets, data
}

// TestReadFileNotInitialized 测试未初始化时调用 ReadFile
func TestReadFileNotInitialized(t *testing.T) {
	initialized = false

	_, err := ReadFile("data/content.yaml")
	if err == nil {
		t.Fatal("Expected error when calling ReadFile() before Init()")
	}
	if err.Error() != "embedded package not initialized, call Init() first" {
		t.Errorf("Unexpected error message: %v", err)
	}
}

// TestExistsNotInitialized 测试未初始化时调用 Exists
func TestExistsNotInitialized(t *testing.T) {
	initialized = false

	if Exists("assets/images/cover.jpg") {
		t.Error("Expected Exists() to return false before Init()")
	}
}

// TestReadFileByPrefix 测试按前缀路由到不同文件系统
func TestReadFileByPrefix(t *testing.T) {
	assets, data := testFS()
	Init(assets, data)
	defer func() { initialized = false }()

	got, err := ReadFile("./data/content.yaml")
	if err != nil {
		t.Fatalf("ReadFile(data) error: %v", err)
	}
	if string(got) != "recipient: Bubu\n" {
		t.Errorf("unexpected data content: %q", got)
	}

	if !Exists("assets/images/cover.jpg") {
		t.Error("Expected asset to exist")
	}
	if Exists("assets/images/missing.jpg") {
		t.Error("Expected missing asset to not exist")
	}
}

// TestOpenInvalidPrefix 测试无效路径前缀
func TestOpenInvalidPrefix(t *testing.T) {
	assets, data := testFS()
	Init(assets, data)
	defer func() { initialized = false }()

	_, err := Open("invalid/path/test.png")
	if err == nil {
		t.Fatal("Expected error for invalid path prefix")
	}
	if err.Error() != "unknown resource path prefix: invalid/path/test.png (must start with 'assets/' or 'data/')" {
		t.Errorf("Unexpected error message: %v", err)
	}
}

// TestNilAssetsFS 测试未提供素材文件系统时的降级行为
func TestNilAssetsFS(t *testing.T) {
	_, data := testFS()
	Init(nil, data)
	defer func() { initialized = false }()

	if Exists("assets/images/cover.jpg") {
		t.Error("Expected no assets when assets FS is nil")
	}
	if _, err := ReadFile("data/content.yaml"); err != nil {
		t.Errorf("data FS should still work: %v", err)
	}
}

// TestBundledContent 内置的内容文件可以按 data/ 前缀读取
func TestBundledContent(t *testing.T) {
	Init(nil, data.FS)
	defer func() { initialized = false }()

	if !Exists("data/content.yaml") {
		t.Fatal("Expected bundled data/content.yaml to exist")
	}
	if Exists("data/missing.yaml") {
		t.Error("Expected missing data file to not exist")
	}
}
