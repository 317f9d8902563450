//go:build !windows

/*
   Helpers for all non-windows machines
*/

package helpers

// UserDir is the name of the lyricount directory in the user's home directory.
const UserDir = ".lyricount"

const homeEnv = "HOME"
