// Command portfolio is the terminal client for the project portfolio API.
package main

import "github.com/rjhade/project-portfolio/cli"

func main() {
	cli.Execute()
}
