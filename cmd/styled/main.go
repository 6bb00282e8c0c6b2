// Command styled renders, inspects and stores styled texts defined in YAML
// style sheets.
package main

import (
	"os"

	"github.com/styledstring/styledstring/pkg/prog"
)

func main() {
	os.Exit(prog.Run([3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args))
}
