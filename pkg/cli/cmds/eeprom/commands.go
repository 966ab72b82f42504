package eeprom

import (
	"fmt"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/bringup/pkg/cli/sh"
	"github.com/robotalks/bringup/pkg/probe"
	"github.com/robotalks/bringup/pkg/report"
)

// BootCmd increments the boot counter.
var BootCmd = ishell.Cmd{
	Name:    "eeprom.boot",
	Aliases: []string{"boot"},
	Help:    "increment the boot counter",
	Func: func(c *ishell.Context) {
		res, err := probe.Boot(sh.ShellFrom(c).Config.EEPROM)
		if res != nil {
			sh.Publish(c, report.NewBootReport(res.Device, res.Size, res.Booted, err))
		}
		if err != nil {
			c.Err(err)
			return
		}
		sh.Output(c, res, fmt.Sprintf("%s (%d bytes): booted %d times", res.Device, res.Size, res.Booted))
	},
}

func init() {
	sh.AddCmds(&BootCmd)
}
