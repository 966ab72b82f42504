package gnss

import (
	"context"
	"fmt"
	"time"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/bringup/pkg/cli/sh"
	"github.com/robotalks/bringup/pkg/gnss"
	"github.com/robotalks/bringup/pkg/probe"
	"github.com/robotalks/bringup/pkg/report"
)

// FixTimeout bounds waiting for each fix.
const FixTimeout = 5 * time.Second

// FixCmd prints fixes from the NMEA output.
var FixCmd = ishell.Cmd{
	Name:    "gnss.fix",
	Aliases: []string{"fix"},
	Help:    "[N] print N fixes (default 1)",
	Func: func(c *ishell.Context) {
		n, err := sh.ArgInt(c, 0, 1)
		if err != nil {
			c.Err(err)
			return
		}
		if n <= 0 {
			c.Err(fmt.Errorf("N must be positive"))
			return
		}
		ctx, cancel := context.WithTimeout(sh.Context(c), time.Duration(n)*FixTimeout)
		defer cancel()
		err = probe.Fixes(ctx, sh.ShellFrom(c).Config.GNSS, n, gnss.FixHandlerFunc(func(fix gnss.Fix) {
			sh.Publish(c, report.NewFixReport(fix))
			sh.Output(c, fix, fmt.Sprintf("%s %.6f,%.6f alt %.1fm sats %d q %s valid %v",
				fix.Time.Format(time.RFC3339), fix.Latitude, fix.Longitude,
				fix.Altitude, fix.Satellites, fix.Quality, fix.Valid))
		}))
		if err != nil {
			c.Err(err)
		}
	},
}

func init() {
	sh.AddCmds(&FixCmd)
}
