package main

import "github.com/pumalang/pumagen/cmd"

func main() {
	cmd.Execute()
}
