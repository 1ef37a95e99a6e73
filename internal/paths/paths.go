package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	AppDirName      = "appicons"
	ConfigFileName  = "appicons.json"
	HistoryFileName = "history.db"
	DirPerm         = 0755
	FilePerm        = 0644
)

// AtomicWrite replaces path with data. The bytes go to a hidden temp file
// in the same directory which is renamed over path, so Xcode and Gradle
// never see a half-written icon. The temp file is removed on any failure.
func AtomicWrite(path string, data []byte) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	f, err := os.CreateTemp(dir, "."+base+"-*.tmp")
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()

	if _, err = f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = os.Chmod(tmp, FilePerm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

// DataDir returns the platform-specific data directory for appicons:
//   - Windows: %APPDATA%\appicons
//   - Unix:    ~/.config/appicons
//
// Falls back to os.TempDir()/appicons if neither is available.
func DataDir() string {
	if appdata := os.Getenv("APPDATA"); appdata != "" {
		return filepath.Join(appdata, AppDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), AppDirName)
	}
	return filepath.Join(home, ".config", AppDirName)
}

// HistoryPath returns the location of the run history database.
func HistoryPath() string {
	return filepath.Join(DataDir(), HistoryFileName)
}
