package treeio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/treesvg/pkg/errors"
)

const sampleDoc = `{
  "value": "+",
  "style": "red@10",
  "children": [
    {"value": 1},
    {"value": 2, "style": "green@5", "children": [{"value": "a"}]}
  ]
}`

func TestRead(t *testing.T) {
	root, err := Read(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if root.Value != "+" {
		t.Errorf("root value = %v, want +", root.Value)
	}
	if root.Style.String() != "red@10" {
		t.Errorf("root style = %s, want red@10", root.Style)
	}

	kids := root.Children()
	if len(kids) != 2 {
		t.Fatalf("children = %d, want 2", len(kids))
	}
	// JSON numbers decode as float64.
	if kids[0].Value != float64(1) {
		t.Errorf("first child value = %v (%T)", kids[0].Value, kids[0].Value)
	}
	if kids[0].Style.String() != "blue@12" {
		t.Errorf("omitted style = %s, want default blue@12", kids[0].Style)
	}
	if kids[1].Style.String() != "green@5" {
		t.Errorf("second child style = %s, want green@5", kids[1].Style)
	}
	if got := kids[1].Children()[0].Value; got != "a" {
		t.Errorf("grandchild value = %v, want a", got)
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		wantCode errors.Code
	}{
		{
			name:     "malformed json",
			doc:      `{"value": `,
			wantCode: errors.ErrCodeInvalidFormat,
		},
		{
			name:     "bad style color",
			doc:      `{"value": 1, "style": "bug_color@62"}`,
			wantCode: errors.ErrCodeInvalidColor,
		},
		{
			name:     "bad style size",
			doc:      `{"value": 1, "style": "green@125"}`,
			wantCode: errors.ErrCodeInvalidSize,
		},
		{
			name:     "bad style token",
			doc:      `{"value": 1, "style": "@12"}`,
			wantCode: errors.ErrCodeInvalidStyleFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.doc))
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("Read() err = %v, want %s", err, tt.wantCode)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	root, err := Read(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	var buf bytes.Buffer
	if err := Write(root, &buf); err != nil {
		t.Fatalf("Write: %v", err)
	}

	again, err := Read(&buf)
	if err != nil {
		t.Fatalf("re-Read: %v", err)
	}

	if again.String() != root.String() {
		t.Errorf("round trip changed shape:\n%s\nvs\n%s", again, root)
	}
	if again.Size() != root.Size() || again.Depth() != root.Depth() {
		t.Error("round trip changed size or depth")
	}
}

func TestWriteNil(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(nil, &buf); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Write(nil) err = %v, want INVALID_INPUT", err)
	}
}

func TestImportExport(t *testing.T) {
	root, err := Read(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	path := t.TempDir() + "/tree.json"
	if err := Export(root, path); err != nil {
		t.Fatalf("Export: %v", err)
	}

	again, err := Import(path)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if again.Size() != root.Size() {
		t.Error("import/export round trip changed the tree")
	}

	if _, err := Import(t.TempDir() + "/missing.json"); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Import missing file err = %v, want FILE_NOT_FOUND", err)
	}
}
