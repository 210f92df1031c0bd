package main

import "resourcedex/cmd/resourcedex-cli/cmd"

func main() {
	cmd.Execute()
}
