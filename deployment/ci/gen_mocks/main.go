package main

import (
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

type FileInfo struct {
	Path string
	Pkg  string
	Dest string
}

func main() {
	skipDirs := map[string]bool{
		"vendor":     true,
		"docs":       true,
		"tmp":        true,
		".git":       true,
		"cmd":        true,
		"deployment": true,
		".vscode":    true,
		".idea":      true,
		"_examples":  true,
	}

	timeStart := time.Now()

	fileCh := make(chan FileInfo, 100)
	var wgMock sync.WaitGroup

	const numWorkers = 5

	for range numWorkers {
		wgMock.Add(1)
		go func() {
			defer wgMock.Done()
			for f := range fileCh {
				cmd := exec.Command("go", "run", "go.uber.org/mock/mockgen@v0.5.2",
					"-source="+f.Path,
					"-destination="+f.Dest,
					"-package="+f.Pkg,
				)
				if out, err := cmd.CombinedOutput(); err != nil {
					fmt.Fprintf(os.Stderr, "Error generating mock for %s: %v\n%s", f.Path, err, out)
					continue
				}
				fmt.Printf("Mock generated: %s\n", f.Dest)
			}
		}()
	}

	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		name := d.Name()
		if filepath.Ext(name) != ".go" || strings.HasPrefix(name, "mock_") || strings.HasSuffix(name, "_test.go") {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
			return nil
		}

		if !strings.Contains(string(content), "interface {") {
			return nil
		}

		// mocks live next to their source so tests use them without an extra import
		fileCh <- FileInfo{
			Path: path,
			Pkg:  extractPackage(string(content)),
			Dest: filepath.Join(filepath.Dir(path), "mock_"+name),
		}

		return nil
	})
	close(fileCh)
	wgMock.Wait()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error walking tree: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nTotal execution time: %s\n", time.Since(timeStart))
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
