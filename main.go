package main

import "stackscout/cmd"

func main() {
	cmd.Execute()
}
