package main

import "github.com/sergev/wwvbclock/cmd"

func main() {
	cmd.Execute()
}
