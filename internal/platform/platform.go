package platform

import (
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Capabilities describes the font-enumeration mechanisms available on
// this host: the OS family, the desktop environment, and which external
// listing tools are on PATH.
type Capabilities struct {
	OS         string // runtime.GOOS value ("windows", "darwin", "linux", ...)
	GTKDesktop bool   // desktop session belongs to the GTK family
	X11        bool   // an X display is reachable

	RegQuery       bool // reg (Windows registry query)
	FcList         bool // fc-list (fontconfig)
	XLSFonts       bool // xlsfonts (X core fonts)
	SystemProfiler bool // system_profiler (macOS)
}

// LookPath reports whether an executable is available, matching the
// signature of exec.LookPath.
type LookPath func(file string) (string, error)

// Getenv reads an environment variable, matching os.Getenv.
type Getenv func(key string) string

// Desktop environments built on GTK. Session names are matched
// case-insensitively against XDG_CURRENT_DESKTOP and DESKTOP_SESSION.
var gtkDesktops = []string{
	"gnome",
	"unity",
	"xfce",
	"cinnamon",
	"x-cinnamon",
	"mate",
	"lxde",
	"pantheon",
	"budgie",
}

// Detect inspects the running host.
func Detect() Capabilities {
	return DetectFrom(runtime.GOOS, os.Getenv, exec.LookPath)
}

// DetectFrom builds Capabilities from injected lookups. Tests use it to
// simulate hosts without touching the real environment.
func DetectFrom(goos string, getenv Getenv, look LookPath) Capabilities {
	caps := Capabilities{
		OS:  goos,
		X11: getenv("DISPLAY") != "",
	}

	session := getenv("XDG_CURRENT_DESKTOP")
	if session == "" {
		session = getenv("DESKTOP_SESSION")
	}
	caps.GTKDesktop = isGTKSession(session)

	has := func(tool string) bool {
		_, err := look(tool)
		return err == nil
	}
	caps.RegQuery = has("reg")
	caps.FcList = has("fc-list")
	caps.XLSFonts = has("xlsfonts")
	caps.SystemProfiler = has("system_profiler")

	return caps
}

func isGTKSession(session string) bool {
	if session == "" {
		return false
	}

	// XDG_CURRENT_DESKTOP may hold a colon-separated list, e.g. "ubuntu:GNOME".
	for _, part := range strings.Split(session, ":") {
		part = strings.ToLower(strings.TrimSpace(part))
		for _, d := range gtkDesktops {
			if part == d {
				return true
			}
		}
	}
	return false
}
