package main

import "github.com/Melek-Sahlia/AI-Agent-Assistant/cmd"

func main() {
	cmd.Execute()
}
