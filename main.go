package main

import "github.com/cristijiru/mozart/cmd"

func main() {
	cmd.Execute()
}
