// SPDX-License-Identifier: MPL-2.0

package main

import cmd "pedir-cli/cmd/pedir"

func main() {
	cmd.Execute()
}
