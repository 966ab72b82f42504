package board

import (
	"os"

	"github.com/denisbrodbeck/machineid"
	"github.com/golang/glog"
)

const appID = "bringup"

// MachineID retrieves the unique ID identifying the machine, hashed with
// the application name. The host name is used when there's no machine ID.
func MachineID() string {
	id, err := machineid.ProtectedID(appID)
	if err == nil {
		return id[:16]
	}
	glog.Warningf("machine id: %v", err)
	host, err := os.Hostname()
	if err != nil {
		panic(err)
	}
	return host
}
