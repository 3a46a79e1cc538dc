package main

import "gofood/order-app/cmd"

func main() {
	cmd.Execute()
}
