/*
Copyright © 2019 Eclipse Foundation and others.
*/
package main

import "github.com/eclipsefdn/eclipsefdn-github-sync/cmd"

func main() {
	cmd.Execute()
}
