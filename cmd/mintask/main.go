package main

import "github.com/sandeepkv93/mintask/internal/cli"

func main() {
	cli.Execute()
}
