package main

import (
	"nudelguides/cmd/nudelguides/commands"
	"nudelguides/lib/serviceutil"
)

func main() {
	commands.ExecuteContext(serviceutil.SignalContext())
}
