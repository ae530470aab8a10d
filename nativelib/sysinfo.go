package nativelib

import (
	"runtime"
	"strings"

	"github.com/dropbox/godropbox/singleton"
)

var systemInfoSingleton = singleton.NewSingleton(func() (interface{}, error) {
	return buildSystemInfo(runtime.Compiler, runtime.GOARCH, runtime.Version()), nil
})

// SystemInfo describes the toolchain and target the library was built
// with. The text is assembled on first use and shared afterwards.
func SystemInfo() string {
	// the init func never fails
	info, _ := systemInfoSingleton.Get()
	return info.(string)
}

// ArchitectureName maps a GOARCH value to the name reported by SystemInfo.
func ArchitectureName(goarch string) string {
	switch goarch {
	case "arm64":
		return "ARM64"
	case "arm":
		return "ARM32"
	case "amd64":
		return "x86_64"
	case "386":
		return "x86"
	default:
		return "Unknown"
	}
}

func buildSystemInfo(compiler, goarch, version string) string {
	var b strings.Builder
	b.WriteString("Native Library Info:\n")

	b.WriteString("- Compiler: ")
	if compiler == "" {
		b.WriteString("Unknown")
	} else {
		b.WriteString(compiler)
		b.WriteString(" ")
		b.WriteString(version)
	}

	b.WriteString("\n- Architecture: ")
	b.WriteString(ArchitectureName(goarch))

	b.WriteString("\n- Go Version: ")
	b.WriteString(version)

	b.WriteString("\n- ABI Fingerprint: ")
	b.WriteString(ABIFingerprint())

	return b.String()
}
