package main

import "github.com/efdtools/efd-pis-cofins/cmd/efd"

func main() {
	cmd.Execute()
}
