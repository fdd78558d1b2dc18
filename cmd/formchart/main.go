package main

import "formchart/cmd/formchart/cmd"

func main() {
	cmd.Execute()
}
