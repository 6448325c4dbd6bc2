package main

import (
	"footygraph/cmd/footygraph/commands"
	"footygraph/lib/util/serviceutil"
)

func main() {
	commands.ExecuteContext(serviceutil.SignalContext())
}
