package main

import "github.com/renoworks/renoquote/internal/cli"

func main() {
	cli.Execute()
}
