package main

import (
	"github.com/cpoulain/corenlp-batch/cmd"
)

func main() {
	cmd.Execute()
}
