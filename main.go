package main

import "spec-sync/cmd"

func main() {
	cmd.Execute()
}
