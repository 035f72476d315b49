// ABOUTME: Recursive discovery of playlist files under the input tree
// ABOUTME: Returns a sorted, deterministic list of .m3u and .m3u8 paths

package playlist

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
)

// IsPlaylistPath reports whether path has a playlist extension (.m3u or .m3u8)
func IsPlaylistPath(path string) bool {
	ext := filepath.Ext(path)

	return ext == ".m3u" || ext == ".m3u8"
}

// Discover walks root recursively and returns the absolute paths of all
// playlist files found. The result is sorted so batch runs process files
// in the same order every time.
func Discover(root string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		if IsPlaylistPath(path) {
			paths = append(paths, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %q for playlists: %w", root, err)
	}

	sort.Strings(paths)

	return paths, nil
}
