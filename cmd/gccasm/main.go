// Command gccasm translates GCC-style extended assembly constructs into the
// target assembly macro syntax.
//
//	gccasm translate -e '"add %0, %1, %2" : "=r"(c) : "r"(a), "r"(b)'
//	gccasm batch constructs.yaml --format json
//	gccasm tokens kernel.s
package main

import (
	"os"

	"github.com/tebeka/atexit"
)

func main() {
	atexit.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
