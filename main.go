package main

import "github.com/Jaron-S/body-fat-calculator/cmd"

func main() {
	cmd.Execute()
}
