package main

import "github.com/louiss0/projectinfo/cmd"

func main() {
	cmd.Execute()
}
