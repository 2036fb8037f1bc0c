package content

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// EnvDataDir overrides the content directory when set.
const EnvDataDir = "COSMIC_DIR"

const appDirName = "cosmic"

// dataRoot says where an OS keeps per-user application data: the first
// set variable in env wins, otherwise home joined with underHome.
type dataRoot struct {
	env       []string
	underHome []string
}

var dataRoots = map[string]dataRoot{
	"darwin":  {underHome: []string{"Library", "Application Support"}},
	"windows": {env: []string{"LOCALAPPDATA", "APPDATA"}},
}

// unixDataRoot covers linux, the BSDs and anything else unlisted.
var unixDataRoot = dataRoot{env: []string{"XDG_DATA_HOME"}, underHome: []string{".local", "share"}}

// ResolveDataDir picks the content directory: $COSMIC_DIR, then a
// "--dir <path>" pair in args, then DefaultDataDir. A leading "~/" is
// expanded to the home directory.
func ResolveDataDir(args []string) string {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return expandHome(dir)
	}
	for i, a := range args {
		if a == "--dir" && i+1 < len(args) {
			return expandHome(args[i+1])
		}
	}
	return DefaultDataDir()
}

// DefaultDataDir returns the per-user content directory for this OS,
// e.g. ~/.local/share/cosmic on Linux.
func DefaultDataDir() string {
	return defaultDataDirForOS(runtime.GOOS)
}

func defaultDataDirForOS(goos string) string {
	root, ok := dataRoots[goos]
	if !ok {
		root = unixDataRoot
	}
	for _, name := range root.env {
		if dir := os.Getenv(name); dir != "" {
			return filepath.Join(dir, appDirName)
		}
	}
	home, _ := os.UserHomeDir()
	parts := append([]string{home}, root.underHome...)
	return filepath.Join(append(parts, appDirName)...)
}

func expandHome(dir string) string {
	rest, ok := strings.CutPrefix(dir, "~/")
	if !ok {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return dir
	}
	return filepath.Join(home, rest)
}
