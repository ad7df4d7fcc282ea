package main

import (
	"log"

	"github.com/go-easy-hotreload/go-easy-hotreload/cmd"
)

func main() {
	log.Default().SetFlags(0)
	cmd.Execute()
}
