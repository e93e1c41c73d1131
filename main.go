package main

import "paper2audio/cmd"

func main() {
	cmd.Execute()
}
