package main

import "github.com/Kappibw/scheduling/internal/cli"

func main() {
	cli.Execute()
}
