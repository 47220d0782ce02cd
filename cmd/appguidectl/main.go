// Command appguidectl offers the chat menu and project tooling around the phase guides.
package main

func main() {
	Execute()
}
