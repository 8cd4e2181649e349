package common

import (
	"os"
)

var Version = "devel"
var ScriptName = "hostcheck"

// NoColor reports whether colored output was disabled through HOSTCHECK_NOCOLOR.
func NoColor() bool {
	v := os.Getenv("HOSTCHECK_NOCOLOR")
	return v == "true" || v == "1"
}

// UserMode is true when running without root privileges.
func UserMode() bool {
	return os.Geteuid() != 0
}

func IsInArray(a string, list []string) bool {
	for _, b := range list {
		if b == a {
			return true
		}
	}
	return false
}
