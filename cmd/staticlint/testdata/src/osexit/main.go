package main

import (
	"fmt"
	stdos "os"
)

func main() {
	defer fmt.Println("bye")

	if len(stdos.Args) > 1 {
		stdos.Exit(2) // want "direct call os.Exit is not allowed in main function"
	}

	exit := func() {
		stdos.Exit(1)
	}
	_ = exit

	stdos.Exit(0) // want "direct call os.Exit is not allowed in main function"
}

func shutdown() {
	stdos.Exit(1)
}
