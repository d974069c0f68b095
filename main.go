package main

import "horairectl/cmd"

func main() {
	cmd.Execute()
}
