package project

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/centra-dev/centra/internal/core"
)

func scanFixture(t *testing.T, fsys *core.MockFileSystem, path, content string) *File {
	t.Helper()
	fsys.SetFile(path, []byte(content))
	file, err := Scan(context.Background(), fsys, path)
	if err != nil {
		t.Fatalf("Scan(%q) error: %v", path, err)
	}
	return file
}

func TestRewrite_StripsBothLoci(t *testing.T) {
	fsys := core.NewMockFileSystem()
	file := scanFixture(t, fsys, "/src/App.csproj", mixedProject)

	rw := NewRewriter(core.NewSaver(fsys, false), false)
	changed, err := rw.Rewrite(context.Background(), file)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !changed {
		t.Fatal("changed = false, want true")
	}

	out, ok := fsys.GetFile("/src/App.csproj")
	if !ok {
		t.Fatal("project file missing after rewrite")
	}
	text := string(out)

	if strings.Contains(text, "Version=") || strings.Contains(text, "<Version>") {
		t.Errorf("version declarations survived rewrite:\n%s", text)
	}
	for _, name := range []string{"Alpha", "Beta", "Gamma", "Delta"} {
		if !strings.Contains(text, name) {
			t.Errorf("reference %q lost during rewrite:\n%s", name, text)
		}
	}
	if !strings.Contains(text, "net8.0") {
		t.Errorf("unrelated content lost during rewrite:\n%s", text)
	}
}

func TestRewrite_NoVersionsNoSave(t *testing.T) {
	content := `<Project Sdk="Microsoft.NET.Sdk">
  <ItemGroup>
    <PackageReference Include="Alpha" />
  </ItemGroup>
</Project>`

	fsys := core.NewMockFileSystem()
	file := scanFixture(t, fsys, "/src/Clean.csproj", content)

	rw := NewRewriter(core.NewSaver(fsys, false), true)
	changed, err := rw.Rewrite(context.Background(), file)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if changed {
		t.Error("changed = true, want false")
	}

	if len(fsys.Writes) != 0 {
		t.Errorf("unexpected writes: %v", fsys.Writes)
	}
	got, _ := fsys.GetFile("/src/Clean.csproj")
	if string(got) != content {
		t.Error("file content changed despite no versions")
	}
}

func TestRewrite_BackupBeforeSave(t *testing.T) {
	fsys := core.NewMockFileSystem()
	file := scanFixture(t, fsys, "/src/App.csproj", mixedProject)

	rw := NewRewriter(core.NewSaver(fsys, false), true)
	if _, err := rw.Rewrite(context.Background(), file); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	backup, ok := fsys.GetFile("/src/App.csproj" + BackupSuffix)
	if !ok {
		t.Fatal("backup file missing")
	}
	if !bytes.Equal(backup, []byte(mixedProject)) {
		t.Error("backup content differs from pre-mutation content")
	}

	if len(fsys.Writes) != 2 {
		t.Fatalf("writes = %v, want backup then project", fsys.Writes)
	}
	if fsys.Writes[0] != "/src/App.csproj"+BackupSuffix || fsys.Writes[1] != "/src/App.csproj" {
		t.Errorf("write order = %v, want backup before project", fsys.Writes)
	}
}

func TestRewrite_PreviewWritesNothing(t *testing.T) {
	fsys := core.NewMockFileSystem()
	file := scanFixture(t, fsys, "/src/App.csproj", mixedProject)

	saver := core.NewSaver(fsys, true)
	rw := NewRewriter(saver, true)
	changed, err := rw.Rewrite(context.Background(), file)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !changed {
		t.Error("changed = false, want true (preview still reports the would-be change)")
	}

	if len(fsys.Writes) != 0 {
		t.Errorf("preview mode wrote files: %v", fsys.Writes)
	}
	got, _ := fsys.GetFile("/src/App.csproj")
	if string(got) != mixedProject {
		t.Error("preview mode mutated the project file")
	}
}

func TestRewrite_Idempotent(t *testing.T) {
	fsys := core.NewMockFileSystem()
	file := scanFixture(t, fsys, "/src/App.csproj", mixedProject)

	rw := NewRewriter(core.NewSaver(fsys, false), false)
	if _, err := rw.Rewrite(context.Background(), file); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first, _ := fsys.GetFile("/src/App.csproj")

	// Scan and rewrite the already-stripped file again.
	again, err := Scan(context.Background(), fsys, "/src/App.csproj")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	changed, err := rw.Rewrite(context.Background(), again)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if changed {
		t.Error("second rewrite reported a change")
	}
	second, _ := fsys.GetFile("/src/App.csproj")
	if !bytes.Equal(first, second) {
		t.Error("second rewrite altered the file")
	}
}
