package main

import "github.com/guitarlab/tabcheck/cmd"

func main() {
	cmd.Execute()
}
