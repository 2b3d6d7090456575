package main

import "github.com/Wawax007/MewgenicsRenamer/cmd"

func main() {
	cmd.Execute()
}
