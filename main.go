package main

import "github.com/varalys/passcheck/cmd/passcheck"

func main() { passcheck.Execute() }
