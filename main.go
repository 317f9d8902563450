// Command lyricount prints statistics about the number of words in the songs of
// music artists.
//
// This file is only here to make installing with go install easier. The source
// lives in the src directory.
package main

import (
	"github.com/ironsmile/lyricount/src"
)

func main() {
	src.Main()
}
