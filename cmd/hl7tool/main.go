// Command hl7tool is a small CLI front end over this module's reader,
// writer, validate and mllp packages: parse a message to a readable dump,
// re-encode one, structurally validate one, or frame/unframe MLLP bytes.
package main

func main() {
	Execute()
}
