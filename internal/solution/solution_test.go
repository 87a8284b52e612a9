package solution

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/centra-dev/centra/internal/core"
)

const sampleSolution = `Microsoft Visual Studio Solution File, Format Version 12.00
# Visual Studio Version 17
Project("{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}") = "App", "src\App\App.csproj", "{11111111-1111-1111-1111-111111111111}"
EndProject
Project("{F184B08F-C81C-45F6-A57F-5ABD9991F28F}") = "Lib", "src\Lib\Lib.vbproj", "{22222222-2222-2222-2222-222222222222}"
EndProject
Project("{2150E333-8FDC-42A3-9474-1A3956D46DE8}") = "Solution Items", "Solution Items", "{33333333-3333-3333-3333-333333333333}"
EndProject
Project("{F2A71F9B-5D33-465A-A702-920D77279786}") = "Tool", "tools/Tool/Tool.fsproj", "{44444444-4444-4444-4444-444444444444}"
EndProject
Global
EndGlobal
`

func TestParseProjectPaths(t *testing.T) {
	paths := ParseProjectPaths(sampleSolution)

	want := []string{
		filepath.FromSlash("src/App/App.csproj"),
		filepath.FromSlash("src/Lib/Lib.vbproj"),
		filepath.FromSlash("tools/Tool/Tool.fsproj"),
	}

	if len(paths) != len(want) {
		t.Fatalf("len(paths) = %d, want %d (%v)", len(paths), len(want), paths)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
}

func TestParseProjectPaths_NoMatches(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty text", ""},
		{"no project lines", "Global\nEndGlobal\n"},
		{"solution folder only", `Project("{2150E333-8FDC-42A3-9474-1A3956D46DE8}") = "Items", "Items", "{AAAA}"`},
		{"unrecognized extension", `Project("{X}") = "Site", "web\Site.sqlproj", "{BBBB}"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if paths := ParseProjectPaths(tt.text); len(paths) != 0 {
				t.Errorf("ParseProjectPaths = %v, want empty", paths)
			}
		})
	}
}

func TestLoad_ResolvesAndDeduplicates(t *testing.T) {
	text := `Project("{X}") = "App", "src\App\App.csproj", "{1}"
Project("{X}") = "AppAgain", "src\App\App.csproj", "{2}"
Project("{X}") = "Lib", "src\Lib\Lib.csproj", "{3}"
`
	fsys := core.NewMockFileSystem()
	fsys.SetFile("/work/demo.sln", []byte(text))

	sol, err := Load(context.Background(), fsys, "/work/demo.sln")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sol.Dir != "/work" {
		t.Errorf("Dir = %q, want %q", sol.Dir, "/work")
	}
	if len(sol.Projects) != 2 {
		t.Fatalf("len(Projects) = %d, want 2 (%v)", len(sol.Projects), sol.Projects)
	}
	if sol.Projects[0] != filepath.FromSlash("/work/src/App/App.csproj") {
		t.Errorf("Projects[0] = %q", sol.Projects[0])
	}
	if sol.Projects[1] != filepath.FromSlash("/work/src/Lib/Lib.csproj") {
		t.Errorf("Projects[1] = %q", sol.Projects[1])
	}
}

func TestLoad_MissingSolution(t *testing.T) {
	fsys := core.NewMockFileSystem()

	_, err := Load(context.Background(), fsys, "/nowhere/missing.sln")
	if err == nil {
		t.Fatal("expected error for missing solution, got nil")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error = %v, want fs.ErrNotExist", err)
	}
}

func TestLoad_EmptySolutionIsNotAnError(t *testing.T) {
	fsys := core.NewMockFileSystem()
	fsys.SetFile("/work/empty.sln", []byte("Global\nEndGlobal\n"))

	sol, err := Load(context.Background(), fsys, "/work/empty.sln")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sol.Projects) != 0 {
		t.Errorf("Projects = %v, want empty", sol.Projects)
	}
}
