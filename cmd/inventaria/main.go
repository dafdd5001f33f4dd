package main

import "github.com/inventaria/inventaria/cmd/inventaria/commands"

func main() {
	commands.Execute()
}
