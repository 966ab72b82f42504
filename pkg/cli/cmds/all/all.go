// Package all registers all bench shell commands.
package all

import (
	_ "github.com/robotalks/bringup/pkg/cli/cmds/eeprom"
	_ "github.com/robotalks/bringup/pkg/cli/cmds/gnss"
	_ "github.com/robotalks/bringup/pkg/cli/cmds/ubx"
	_ "github.com/robotalks/bringup/pkg/cli/cmds/uwb"
)
