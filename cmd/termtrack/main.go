package main

import "github.com/bethropolis/termtrack/internal/cli"

func main() {
	cli.Execute()
}
