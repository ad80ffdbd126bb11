package main

import "github.com/gnames/puyadb/cmd"

func main() {
	cmd.Execute()
}
