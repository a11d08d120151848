package activate

import (
	"path/filepath"
	"runtime"
	"strings"
)

// pathDirs yields the executable directories an environment contributes to
// PATH, outermost first. On Windows a conda-style prefix carries several.
func pathDirs(prefix string) []string {
	if runtime.GOOS == "windows" {
		return []string{
			strings.TrimRight(prefix, `\/`),
			filepath.Join(prefix, "Library", "mingw-w64", "bin"),
			filepath.Join(prefix, "Library", "usr", "bin"),
			filepath.Join(prefix, "Library", "bin"),
			filepath.Join(prefix, "Scripts"),
			filepath.Join(prefix, "bin"),
		}
	}
	return []string{filepath.Join(prefix, "bin")}
}

// splitPath splits a PATH value on the list separator. An empty value
// yields an empty list, not one empty segment.
func splitPath(path, sep string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, sep)
}

// pathSegmentsEqual compares two PATH segments on exact cleaned-path
// equality. Substring matching would truncate unrelated directories whose
// names merely contain the prefix.
func pathSegmentsEqual(a, b string) bool {
	if a == "" || b == "" {
		return a == b
	}
	ca, cb := filepath.Clean(a), filepath.Clean(b)
	if runtime.GOOS == "windows" {
		return strings.EqualFold(ca, cb)
	}
	return ca == cb
}

func indexOfSegment(segments []string, target string) int {
	for i, segment := range segments {
		if pathSegmentsEqual(segment, target) {
			return i
		}
	}
	return -1
}

// addPrefixToPath prepends the prefix's executable directories to the
// segment list.
func addPrefixToPath(prefix string, segments []string) []string {
	dirs := pathDirs(prefix)
	result := make([]string, 0, len(dirs)+len(segments))
	result = append(result, dirs...)
	result = append(result, segments...)
	return result
}

// removePrefixFromPath removes the prefix's executable directories from the
// segment list.
func removePrefixFromPath(prefix string, segments []string) []string {
	return replacePrefixInPath(prefix, "", segments)
}

// replacePrefixInPath removes oldPrefix's directories from the segment list
// and splices newPrefix's directories in at the position of the first
// removed entry. With an empty newPrefix this is a plain removal; when
// oldPrefix's entries are not found the new ones go to the front.
func replacePrefixInPath(oldPrefix, newPrefix string, segments []string) []string {
	result := make([]string, len(segments))
	copy(result, segments)

	insertAt := 0
	if oldPrefix != "" {
		oldDirs := pathDirs(oldPrefix)
		firstIdx := indexOfSegment(result, oldDirs[0])
		if firstIdx >= 0 {
			lastIdx := firstIdx
			for i := len(oldDirs) - 1; i >= 0; i-- {
				if idx := indexOfSegment(result, oldDirs[i]); idx > lastIdx {
					lastIdx = idx
				}
			}
			result = append(result[:firstIdx], result[lastIdx+1:]...)
			insertAt = firstIdx
		}
	}

	if newPrefix != "" {
		newDirs := pathDirs(newPrefix)
		tail := make([]string, len(result[insertAt:]))
		copy(tail, result[insertAt:])
		result = append(result[:insertAt], append(newDirs, tail...)...)
	}
	return result
}
