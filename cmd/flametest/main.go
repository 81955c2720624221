package main

import "flametest/internal/lab"

func main() {
	lab.RunDesktop()
}
