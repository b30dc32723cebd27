package main

import "github.com/notargets/vertstruct/cmd"

func main() {
	cmd.Execute()
}
