package main

import "github.com/diogo/bardweb/internal/commands"

func main() {
	commands.Execute()
}
