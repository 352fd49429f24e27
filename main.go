package main

import "drift-detector/cmd"

func main() {
	cmd.Execute()
}
