package ubx

import (
	"fmt"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/bringup/pkg/cli/sh"
	"github.com/robotalks/bringup/pkg/probe"
	"github.com/robotalks/bringup/pkg/report"
)

// VersionCmd polls the GNSS receiver version over SPI.
var VersionCmd = ishell.Cmd{
	Name:    "ubx.version",
	Aliases: []string{"ver"},
	Help:    "poll MON-VER over SPI",
	Func: func(c *ishell.Context) {
		s := sh.ShellFrom(c)
		res, err := probe.Version(sh.Context(c), s.Config.GNSS)
		r := report.NewVersionReport(nil, nil, err)
		if res != nil {
			r = report.NewVersionReport(res.Raw, res.Version, err)
		}
		sh.Publish(c, r)
		if err != nil {
			c.Err(fmt.Errorf("didn't find version packet: %w", err))
			return
		}
		sh.Output(c, res, fmt.Sprintf("SW: %s\nHW: %s\nEXT: %v\n% x",
			res.Version.Software, res.Version.Hardware, res.Version.Extensions, res.Raw))
	},
}

func init() {
	sh.AddCmds(&VersionCmd)
}
