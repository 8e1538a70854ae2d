package main

import "github.com/vin0san/mini-twitter/commands"

func main() {
	commands.Execute()
}
