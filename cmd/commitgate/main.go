package main

import "github.com/emiliopalmerini/commitgate/internal/cli"

func main() {
	cli.Execute()
}
