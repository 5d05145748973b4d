package main

import "finance-engine/internal/cli"

func main() {
	cli.Execute()
}
