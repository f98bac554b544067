package preflight

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// Access is the permission set a directory check requires.
type Access uint32

const (
	Readable Access = unix.R_OK | unix.X_OK
	Writable Access = unix.W_OK | unix.X_OK
)

func (a Access) String() string {
	switch a {
	case Readable:
		return "read"
	case Writable:
		return "write"
	default:
		return "read/write"
	}
}

// CheckDirectoryAccess verifies that the directory exists and grants access.
func CheckDirectoryAccess(name, path string, access Access) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, uint32(access)); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%s ok)", path, access)}
}

// CheckCreatableDirectory passes when path is a writable directory or can be
// created under its nearest existing ancestor.
func CheckCreatableDirectory(name, path string) Result {
	existing := path
	for {
		info, err := os.Stat(existing)
		if err == nil {
			if !info.IsDir() {
				return Result{Name: name, Detail: fmt.Sprintf("%s (error: %s is not a directory)", path, existing)}
			}
			break
		}
		if !os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
		}
		parent := filepath.Dir(existing)
		if parent == existing {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: no existing parent)", path)}
		}
		existing = parent
	}
	if err := unix.Access(existing, uint32(Writable)); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %s not writable: %v)", path, existing, err)}
	}
	if existing != path {
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (will be created)", path)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (write ok)", path)}
}

// CheckOutputTarget verifies that file can be created or replaced.
func CheckOutputTarget(name, file string) Result {
	if info, err := os.Stat(file); err == nil && info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is a directory)", file)}
	}
	dir := CheckCreatableDirectory(name, filepath.Dir(file))
	if !dir.Passed {
		return dir
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (writable)", file)}
}

// CheckBook verifies that the book file for title exists and is readable.
func CheckBook(title, path string) Result {
	name := fmt.Sprintf("Book %q", title)
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: not found)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: not readable: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d bytes)", path, info.Size())}
}
