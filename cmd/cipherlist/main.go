package main

import "github.com/cipherlist/cipherlist/internal/cli"

func main() {
	cli.Execute()
}
