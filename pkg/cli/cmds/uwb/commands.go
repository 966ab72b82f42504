package uwb

import (
	"github.com/abiosoft/ishell"

	"github.com/robotalks/bringup/pkg/cli/sh"
	"github.com/robotalks/bringup/pkg/probe"
	"github.com/robotalks/bringup/pkg/report"
)

// IDCmd reads the UWB device ID.
var IDCmd = ishell.Cmd{
	Name:    "uwb.id",
	Aliases: []string{"devid"},
	Help:    "read DEV_ID of the UWB transceiver",
	Func: func(c *ishell.Context) {
		id, err := probe.DeviceID(sh.ShellFrom(c).Config.UWB)
		sh.Publish(c, report.NewDeviceIDReport(id, err))
		if err != nil {
			c.Err(err)
			return
		}
		sh.Output(c, id, id.String())
	},
}

func init() {
	sh.AddCmds(&IDCmd)
}
