package main

import "github.com/vabshroo/builgen/cmd"

func main() {
	cmd.Execute()
}
