package main

import "github.com/bgraf/diashow/cmd"

func main() {
	cmd.Execute()
}
