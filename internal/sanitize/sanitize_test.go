package sanitize

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestProjectHash(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty path",
			input: "",
			want:  "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:  "absolute path",
			input: "/home/user/project",
			want:  "9dad1e4e08b0b11cbcd860257e8bdfa6b8e5f01790e10a6a0b1f4870c13e686b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProjectHash(tt.input)
			if got != tt.want {
				t.Errorf("ProjectHash(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestProjectHash_Deterministic(t *testing.T) {
	a := ProjectHash("/tmp/a")
	if a != ProjectHash("/tmp/a") {
		t.Error("ProjectHash should be deterministic")
	}
	if a == ProjectHash("/tmp/b") {
		t.Error("different paths should hash differently")
	}
}

func TestEncodeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "unreserved kept", input: "ok-name_1.2~", want: "ok-name_1.2~"},
		{name: "space", input: "my chat", want: "my%20chat"},
		{name: "forward slash", input: "a/b", want: "a%2Fb"},
		{name: "backslash", input: `..\x`, want: "..%5Cx"},
		{name: "percent", input: "x%y", want: "x%25y"},
		{name: "utf8 bytes", input: "ünï", want: "%C3%BCn%C3%AF"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeName(tt.input)
			if got != tt.want {
				t.Errorf("EncodeName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCheckpointName(t *testing.T) {
	got, err := CheckpointName("../../etc/passwd")
	if err != nil {
		t.Fatalf("CheckpointName() error = %v", err)
	}
	want := "checkpoint-..%2F..%2Fetc%2Fpasswd.json"
	if got != want {
		t.Errorf("CheckpointName() = %q, want %q", got, want)
	}

	if _, err := CheckpointName(""); !errors.Is(err, ErrEmptyName) {
		t.Errorf("CheckpointName(\"\") error = %v, want ErrEmptyName", err)
	}
}

func TestNameFromCheckpointFile(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
		wantOK   bool
	}{
		{name: "encoded space", filename: "checkpoint-my%20chat.json", want: "my chat", wantOK: true},
		{name: "encoded slash", filename: "checkpoint-a%2Fb.json", want: "a/b", wantOK: true},
		{name: "bad escape kept raw", filename: "checkpoint-bad%zz.json", want: "bad%zz", wantOK: true},
		{name: "session file", filename: "session-1.json", wantOK: false},
		{name: "wrong suffix", filename: "checkpoint-x.txt", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NameFromCheckpointFile(tt.filename)
			if ok != tt.wantOK {
				t.Fatalf("NameFromCheckpointFile(%q) ok = %v, want %v", tt.filename, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("NameFromCheckpointFile(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}

func TestNameRoundTrip(t *testing.T) {
	for _, name := range []string{"plain", "with space", "a/b\\c", "100%", "ünï"} {
		filename, err := CheckpointName(name)
		if err != nil {
			t.Fatalf("CheckpointName(%q) error = %v", name, err)
		}
		got, ok := NameFromCheckpointFile(filename)
		if !ok || got != name {
			t.Errorf("round trip %q -> %q -> %q (ok=%v)", name, filename, got, ok)
		}
	}
}

func TestContainedPath(t *testing.T) {
	base := filepath.Join(t.TempDir(), "proj")

	got, err := ContainedPath(base, "checkpoint-a%2Fb.json")
	if err != nil {
		t.Fatalf("ContainedPath() error = %v", err)
	}
	if filepath.Dir(got) != base {
		t.Errorf("ContainedPath() = %q, want child of %q", got, base)
	}

	for _, bad := range []string{"../escape.json", "a/b.json", `a\b.json`, ".."} {
		if _, err := ContainedPath(base, bad); !errors.Is(err, ErrPathTraversal) {
			t.Errorf("ContainedPath(%q) error = %v, want ErrPathTraversal", bad, err)
		}
	}
}
