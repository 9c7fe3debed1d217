package promptgen

import "testing"

func TestBuildFileTree(t *testing.T) {
	got := BuildFileTree([]string{"src/app.go", "src/util/helper.go", "README.md"})
	want := `README.md
src/
├── app.go
└── util/
    └── helper.go`
	if got != want {
		t.Errorf("BuildFileTree =\n%s\nwant\n%s", got, want)
	}
}

func TestBuildFileTree_DeterministicOrder(t *testing.T) {
	a := BuildFileTree([]string{"b.go", "a/x.go", "a/y.go", "c.go"})
	b := BuildFileTree([]string{"c.go", "a/y.go", "b.go", "a/x.go"})
	if a != b {
		t.Errorf("tree depends on input order:\n%s\nvs\n%s", a, b)
	}
}

func TestBuildFileTree_Flat(t *testing.T) {
	got := BuildFileTree([]string{"b.txt", "a.txt"})
	want := "a.txt\nb.txt"
	if got != want {
		t.Errorf("BuildFileTree = %q, want %q", got, want)
	}
}

func TestBuildFileTree_Empty(t *testing.T) {
	if got := BuildFileTree(nil); got != "" {
		t.Errorf("BuildFileTree(nil) = %q, want empty", got)
	}
}

func TestBuildFileTree_DeepNesting(t *testing.T) {
	got := BuildFileTree([]string{"a/b/c/d.go"})
	want := `a/
└── b/
    └── c/
        └── d.go`
	if got != want {
		t.Errorf("BuildFileTree =\n%s\nwant\n%s", got, want)
	}
}
