package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// validation_pkg fails when a package clause does not match its folder, when two
// folders share a name, or when a generated mock sits apart from its source file.
func main() {
	skipDirs := map[string]bool{
		"vendor":     true,
		"docs":       true,
		"tmp":        true,
		".git":       true,
		"deployment": true,
		".vscode":    true,
		".idea":      true,
		"_examples":  true,
	}

	folders := make(map[string][]string)
	var problems []string

	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			if path != "." {
				folders[d.Name()] = append(folders[d.Name()], path)
			}
			return nil
		}

		name := d.Name()
		if filepath.Ext(name) != ".go" || strings.HasSuffix(name, "_test.go") {
			return nil
		}

		if src, ok := strings.CutPrefix(name, "mock_"); ok {
			if _, err := os.Stat(filepath.Join(filepath.Dir(path), src)); err != nil {
				problems = append(problems, fmt.Sprintf("mock %s has no source file %s beside it", path, src))
			}
		}

		content, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
			return nil
		}

		pkg := extractPackage(string(content))
		if pkg == "main" {
			return nil
		}

		folder := filepath.Base(filepath.Dir(path))
		if pkg != "" && folder != "." && pkg != folder {
			problems = append(problems, fmt.Sprintf("package %q does not match folder %q in %s", pkg, folder, path))
		}

		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error walking tree: %v\n", err)
		os.Exit(1)
	}

	for name, paths := range folders {
		if len(paths) > 1 {
			problems = append(problems, fmt.Sprintf("folder %q is duplicated: %s", name, strings.Join(paths, ", ")))
		}
	}

	if len(problems) > 0 {
		sort.Strings(problems)
		for _, p := range problems {
			fmt.Println("ERROR:", p)
		}
		os.Exit(1)
	}

	fmt.Println("No problems found.")
}

func extractPackage(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "package ") {
			return strings.TrimPrefix(line, "package ")
		}
	}
	return ""
}
