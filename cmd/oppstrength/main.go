package main

import (
	"oppstrength/cmd/oppstrength/commands"
	"oppstrength/lib/util/serviceutil"
)

func main() {
	commands.ExecuteContext(serviceutil.SignalContext())
}
