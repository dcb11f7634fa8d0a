package main

import "github.com/dhank77/undangan.love/cmd"

func main() {
	cmd.Execute()
}
