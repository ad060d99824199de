package main

import "github.com/vanceb/albums/internal/cli"

func main() {
	cli.Execute()
}
