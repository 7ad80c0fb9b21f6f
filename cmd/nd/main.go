// Package main provides the ndkit CLI.
package main

import (
	"fmt"
	"os"

	"github.com/ndkit/nd/format"
	"github.com/ndkit/nd/numio"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("ndkit %s\n", version)
			return
		case "show":
			if len(os.Args) < 3 {
				fmt.Fprintln(os.Stderr, "usage: nd show <file.txt>")
				os.Exit(2)
			}
			if err := show(os.Args[2]); err != nil {
				fmt.Fprintf(os.Stderr, "nd: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("ndkit - NumPy-style arrays for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version        Show version")
	fmt.Println("  show <file>    Render a delimited text file as an array")
}

// show loads a whitespace- or comma-delimited text file as float64
// and pretty-prints it.
func show(path string) error {
	a, err := numio.LoadTxtFile[float64](path, "")
	if err != nil {
		return err
	}
	s, err := format.Sprint[float64](a, format.DefaultOptions())
	if err != nil {
		return err
	}
	fmt.Println(s)
	return nil
}
