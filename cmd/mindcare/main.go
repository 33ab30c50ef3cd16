package main

import "github.com/mcoot/mindcare/internal/cli"

func main() {
	cli.Execute()
}
