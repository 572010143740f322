// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"os/user"

	"lox/repl"
)

func main() {
	currentUser, err := user.Current()
	if err != nil {
		fmt.Printf("Error getting current user: %v\n", err)
		return
	}

	fmt.Printf("Welcome to the Lox REPL, %s!\n", currentUser.Username)
	fmt.Println("Type Lox source and the scanner will print its tokens.")
	repl.Start(os.Stdin, os.Stdout)
}
