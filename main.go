package main

import (
	"fmt"
	"os"

	"github.com/FredyC/graphql-cli/cmd"
)

var cli *cmd.CommandLine

func init() {
	cli = cmd.NewCLI()
}

func main() {
	if err := cli.Run(os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
