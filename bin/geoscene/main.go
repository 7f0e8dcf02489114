package main

import (
	"log"

	"github.com/blkot/geoscene/cmd"
)

func main() {
	err := cmd.Run()
	if err != nil {
		log.Fatal(err.Error())
	}
}
