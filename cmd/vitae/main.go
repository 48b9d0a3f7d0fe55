// Command vitae renders the bundled resume to PDF.
package main

import (
	"fmt"
	"log"

	"github.com/tsawler/vitae"
)

func main() {
	log.SetFlags(0)

	res, err := vitae.DefaultResume()
	if err != nil {
		log.Fatal(err)
	}
	path, err := vitae.Generate(res)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Professional CV created at %s\n", path)
}
