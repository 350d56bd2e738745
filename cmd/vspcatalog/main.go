package main

import "vspcatalog/internal/cli"

func main() {
	cli.Execute()
}
