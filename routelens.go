package main

import "github.com/routelens/routelens/cmd"

func main() {
	cmd.Execute()
}
