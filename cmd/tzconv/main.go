package main

import "tzconv/internal/cli"

func main() {
	cli.Main()
}
