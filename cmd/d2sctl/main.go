// Command d2sctl inspects and edits character save files.
package main

func main() {
	execute()
}
