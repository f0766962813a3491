package main

import "github.com/ajmarsh/context-collapse-server/internal/cli"

func main() {
	cli.Execute()
}
