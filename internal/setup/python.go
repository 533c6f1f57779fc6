package setup

import "path/filepath"

// VenvDir is the virtual environment directory created inside the target.
const VenvDir = ".venv"

// VenvPython returns the project-relative path of the interpreter inside
// the virtual environment for the given GOOS value. Windows nests the
// executable under Scripts with an .exe extension; every other platform
// uses bin. Pure function, no filesystem access.
func VenvPython(goos string) string {
	if goos == "windows" {
		return filepath.Join(VenvDir, "Scripts", "python.exe")
	}
	return filepath.Join(VenvDir, "bin", "python")
}

// SystemPython returns the interpreter name used to create the virtual
// environment on the given GOOS.
func SystemPython(goos string) string {
	if goos == "windows" {
		return "python"
	}
	return "python3"
}
