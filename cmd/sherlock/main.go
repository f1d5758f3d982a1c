package main

import "sherlock/internal/cli"

func main() {
	cli.Execute()
}
