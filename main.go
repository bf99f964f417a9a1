package main

import "github.com/gaurav-prasanna/guidegen/cmd"

func main() {
	cmd.Execute()
}
