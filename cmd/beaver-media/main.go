package main

import "github.com/gobeaver/beaver-media/internal/cli"

func main() {
	cli.Execute()
}
