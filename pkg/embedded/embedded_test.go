package embedded

import (
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/fireworks.xml": {Data: []byte("<Fireworks/>")},
		"data/config.yaml":   {Data: []byte("seed: 1\n")},
		"data/other.xml":     {Data: []byte("<Fireworks/>")},
	}
}

// TestIsInitialized checks the initialization state.
func TestIsInitialized(t *testing.T) {
	Init(nil)
	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(testFS())
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

func TestNotInitialized(t *testing.T) {
	Init(nil)

	if _, err := ReadFile("data/fireworks.xml"); err == nil || err.Error() != errNotInitialized.Error() {
		t.Errorf("Expected not-initialized error from ReadFile, got %v", err)
	}
	if _, err := Open("data/fireworks.xml"); err == nil {
		t.Error("Expected error when calling Open() before Init()")
	}
	if _, err := Glob("data/*.xml"); err == nil {
		t.Error("Expected error when calling Glob() before Init()")
	}
	if Exists("data/fireworks.xml") {
		t.Error("Expected Exists() to return false before Init()")
	}
}

func TestReadFile(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{name: "plain path", path: "data/config.yaml", want: "seed: 1\n"},
		{name: "dot slash prefix", path: "./data/config.yaml", want: "seed: 1\n"},
		{name: "missing file", path: "data/missing.yaml", wantErr: true},
		{name: "wrong prefix", path: "assets/config.yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadFile(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ReadFile(%q) expected error", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadFile(%q) error: %v", tt.path, err)
			}
			if string(got) != tt.want {
				t.Errorf("ReadFile(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestExistsAndGlob(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	if !Exists("data/fireworks.xml") {
		t.Error("Expected data/fireworks.xml to exist")
	}
	if Exists("data/nope.xml") {
		t.Error("Expected data/nope.xml not to exist")
	}

	matches, err := Glob("data/*.xml")
	if err != nil {
		t.Fatalf("Glob failed: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("Expected 2 XML matches, got %v", matches)
	}
}
