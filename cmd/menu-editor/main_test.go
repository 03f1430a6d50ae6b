package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const mainMenu = `{
  "menu": "main",
  "items": [
    {"name": "Home", "path": "/", "icon": "home"},
    {"name": "Docs", "path": "/docs", "children": [
      {"name": "Guides", "path": "/docs/guides"}
    ]}
  ]
}`

const footerSeed = `---
menu: footer
items:
  - name: Legal
    path: /legal
---
Links rendered in the site footer.
`

func runCLI(t *testing.T, dsn string, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--driver", "sqlite", "--dsn", dsn}, args...))
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestImportExportAndList(t *testing.T) {
	dir := t.TempDir()
	dsn := "file:" + filepath.Join(dir, "menus.db") + "?_fk=1"

	out, err := runCLI(t, dsn, "import", writeFile(t, dir, "main.json", mainMenu))
	if err != nil {
		t.Fatalf("import json: %v", err)
	}
	if !strings.Contains(out, "imported 3 items into main") {
		t.Fatalf("unexpected import output %q", out)
	}

	if _, err := runCLI(t, dsn, "import", writeFile(t, dir, "footer.md", footerSeed)); err != nil {
		t.Fatalf("import seed: %v", err)
	}

	out, err = runCLI(t, dsn, "export", "main")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	var doc struct {
		Menu  string `json:"menu"`
		Items []struct {
			Name     string `json:"name"`
			Children []struct {
				Name string `json:"name"`
			} `json:"children"`
		} `json:"items"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("decode export: %v\n%s", err, out)
	}
	if doc.Menu != "main" || len(doc.Items) != 2 || len(doc.Items[1].Children) != 1 {
		t.Fatalf("unexpected export %#v", doc)
	}

	out, err = runCLI(t, dsn, "menus")
	if err != nil {
		t.Fatalf("menus: %v", err)
	}
	if !strings.Contains(out, "main\t3") || !strings.Contains(out, "footer\t1") {
		t.Fatalf("unexpected menu listing %q", out)
	}
}

func TestImportOverridesMenuCode(t *testing.T) {
	dir := t.TempDir()
	dsn := "file:" + filepath.Join(dir, "menus.db") + "?_fk=1"

	out, err := runCLI(t, dsn, "import", "--menu", "Side Nav", writeFile(t, dir, "main.json", mainMenu))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if !strings.Contains(out, "into side-nav") {
		t.Fatalf("expected import into side-nav, got %q", out)
	}
}

func TestImportRejectsInvalidDocument(t *testing.T) {
	dir := t.TempDir()
	dsn := "file:" + filepath.Join(dir, "menus.db") + "?_fk=1"

	if _, err := runCLI(t, dsn, "import", writeFile(t, dir, "bad.json", `{"menu": "main", "items": [{"path": "/"}]}`)); err == nil {
		t.Fatal("expected invalid document to be rejected")
	}
}

func TestEditRequiresMenuArgument(t *testing.T) {
	if _, err := runCLI(t, "file::memory:", "edit"); err == nil {
		t.Fatal("expected edit without a menu to fail")
	}
}
