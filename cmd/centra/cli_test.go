package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(orig)
	})
}

func TestRunCLI_ConvertWithConfigDefaults(t *testing.T) {
	tmp := t.TempDir()

	sln := `Project("{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}") = "App", "App\App.csproj", "{1}"
EndProject
`
	proj := `<Project Sdk="Microsoft.NET.Sdk">
  <ItemGroup>
    <PackageReference Include="Contoso.Widgets" Version="1.2.3" />
  </ItemGroup>
</Project>`

	if err := os.WriteFile(filepath.Join(tmp, "demo.sln"), []byte(sln), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(tmp, "App"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tmp, "App", "App.csproj"), []byte(proj), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tmp, ".centra.yaml"), []byte("solution: demo.sln\nsort: discovery\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	chdir(t, tmp)

	if err := runCLI([]string{"centra", "--no-color", "convert", "--yes"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(tmp, "Directory.Packages.props"))
	if err != nil {
		t.Fatalf("package manifest missing: %v", err)
	}
	if !strings.Contains(string(data), "Contoso.Widgets") {
		t.Errorf("manifest content unexpected:\n%s", data)
	}
}

func TestRunCLI_MissingSolution(t *testing.T) {
	chdir(t, t.TempDir())

	err := runCLI([]string{"centra", "convert", "absent.sln", "--yes"})
	if err == nil {
		t.Fatal("expected error for missing solution, got nil")
	}
}

func TestRunCLI_BadConfig(t *testing.T) {
	tmp := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmp, ".centra.yaml"), []byte("bogus: [unclosed\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	chdir(t, tmp)

	if err := runCLI([]string{"centra", "convert", "demo.sln", "--yes"}); err == nil {
		t.Fatal("expected error for malformed config, got nil")
	}
}
