//go:build windows

package helpers

// UserDir is the name of the lyricount directory in the user's %APPDATA% directory.
const UserDir = "lyricount"

const homeEnv = "APPDATA"
