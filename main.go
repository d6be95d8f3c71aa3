package main

import "github.com/tharun634/JavaBot/cmd"

func main() {
	cmd.Execute()
}
