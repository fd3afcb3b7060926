package main

import "github.com/jamesbehr/openeditor/cmd"

func main() {
	cmd.Execute()
}
