package main

import "github.com/ftl/aliascope/cmd"

func main() {
	cmd.Execute()
}
